package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// establish sets a session on a recorder and returns the cookies to replay.
func establish(t *testing.T, store *Store, username, token string) []*http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	if err := store.SetUser(w, r, username, token); err != nil {
		t.Fatalf("SetUser: %v", err)
	}
	return w.Result().Cookies()
}

func withCookies(cookies []*http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/home", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestStore_SetAndReadBack(t *testing.T) {
	store := NewStore("test-secret")

	req := withCookies(establish(t, store, "ann", "tok123"))

	if got := store.Username(req); got != "ann" {
		t.Fatalf("expected username ann, got %q", got)
	}
	if got := store.Token(req); got != "tok123" {
		t.Fatalf("expected token tok123, got %q", got)
	}
}

func TestStore_NoCookieReadsAsAbsent(t *testing.T) {
	store := NewStore("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	if got := store.Username(req); got != "" {
		t.Fatalf("expected empty username, got %q", got)
	}
}

func TestStore_ForeignCookieReadsAsAbsent(t *testing.T) {
	store := NewStore("test-secret")
	other := NewStore("another-secret")

	// Cookie signed with a different secret must not authenticate.
	req := withCookies(establish(t, other, "ann", "tok123"))
	if got := store.Username(req); got != "" {
		t.Fatalf("expected empty username for foreign cookie, got %q", got)
	}
}

func TestStore_ClearInvalidatesReplayedCookie(t *testing.T) {
	store := NewStore("test-secret")

	cookies := establish(t, store, "ann", "tok123")

	w := httptest.NewRecorder()
	if err := store.Clear(w, withCookies(cookies)); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	// The Set-Cookie response expires the cookie client-side.
	expired := w.Result().Cookies()
	if len(expired) == 0 || expired[0].MaxAge >= 0 {
		t.Fatalf("expected an expiring Set-Cookie header, got %v", expired)
	}

	// A client that kept the old cookie is still locked out.
	if got := store.Username(withCookies(cookies)); got != "" {
		t.Fatalf("expected replayed cookie to be rejected, got %q", got)
	}
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	store := NewStore("test-secret")

	annCookies := establish(t, store, "ann", "tok-a")
	bobCookies := establish(t, store, "bob", "tok-b")

	if err := store.Clear(httptest.NewRecorder(), withCookies(annCookies)); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if got := store.Username(withCookies(bobCookies)); got != "bob" {
		t.Fatalf("clearing ann's session must not touch bob's, got %q", got)
	}
}
