package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"techsphere/internal/service"
	"techsphere/internal/session"

	"github.com/gin-gonic/gin"
)

const testSessionSecret = "test-session-secret"

// newTestRouter wires the full route table around mock services.
func newTestRouter(s *service.Service) (*gin.Engine, *session.Store) {
	gin.SetMode(gin.TestMode)
	store := session.NewStore(testSessionSecret)
	h := NewHandler(s, store, nil)
	return h.InitRoutes(), store
}

// loginAs establishes a session in the store and returns the cookies a
// browser would replay on subsequent requests.
func loginAs(t *testing.T, store *session.Store, username string) []*http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	if err := store.SetUser(w, r, username, "test-token"); err != nil {
		t.Fatalf("SetUser: %v", err)
	}
	return w.Result().Cookies()
}

func addCookies(r *http.Request, cookies []*http.Cookie) {
	for _, c := range cookies {
		r.AddCookie(c)
	}
}
