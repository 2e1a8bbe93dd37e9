package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techsphere/internal/models"
	"techsphere/internal/service"
)

func TestMyProfileHandler(t *testing.T) {
	t.Run("renders the re-fetched record without the credential", func(t *testing.T) {
		profile := &mockProfile{getUser: models.User{
			ID: 7, FullName: "Ann Smith", Username: "ann", Email: "ann@example.com", PasswordHash: "secret-hash",
		}}
		r, store := newTestRouter(&service.Service{Profile: profile})
		cookies := loginAs(t, store, "ann")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/myprofile", nil)
		addCookies(req, cookies)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		for _, want := range []string{"Ann Smith", "ann", "ann@example.com"} {
			if !strings.Contains(body, want) {
				t.Fatalf("profile page missing %q", want)
			}
		}
		if strings.Contains(body, "secret-hash") {
			t.Fatalf("credential leaked into the profile view")
		}
	})

	t.Run("missing record answers 404 plain text", func(t *testing.T) {
		profile := &mockProfile{getErr: service.ErrUserNotFound}
		r, store := newTestRouter(&service.Service{Profile: profile})
		cookies := loginAs(t, store, "ghost")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/myprofile", nil)
		addCookies(req, cookies)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w.Body.String() != errUserNotFound {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	const form = "fullname=Ann+S.&email=ann2%40example.com&password=newpassword"

	t.Run("success destroys the session and redirects once", func(t *testing.T) {
		profile := &mockProfile{}
		r, store := newTestRouter(&service.Service{Profile: profile})
		cookies := loginAs(t, store, "ann")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/myprofile", bytes.NewBufferString(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		addCookies(req, cookies)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected single 303 response, got %d (%s)", w.Code, w.Body.String())
		}
		if loc := w.Header().Get("Location"); loc != "/" {
			t.Fatalf("expected redirect to /, got %q", loc)
		}
		if profile.lastUpdateUsername != "ann" {
			t.Fatalf("update keyed by %q, want session identity ann", profile.lastUpdateUsername)
		}
		if profile.lastUpdate.FullName != "Ann S." || profile.lastUpdate.Email != "ann2@example.com" {
			t.Fatalf("unexpected update params: %+v", profile.lastUpdate)
		}

		// Forced re-login: the old cookie no longer authenticates.
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/myprofile", nil)
		addCookies(req, cookies)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 after profile update, got %d", w.Code)
		}
	})

	t.Run("zero-row update answers 404", func(t *testing.T) {
		profile := &mockProfile{updErr: service.ErrUserNotFound}
		r, store := newTestRouter(&service.Service{Profile: profile})
		cookies := loginAs(t, store, "ghost")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/myprofile", bytes.NewBufferString(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		addCookies(req, cookies)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), errUserNoChanges) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("persistence failure answers generic 500 and keeps the session", func(t *testing.T) {
		profile := &mockProfile{updErr: errors.New("database is locked")}
		r, store := newTestRouter(&service.Service{Profile: profile})
		cookies := loginAs(t, store, "ann")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/myprofile", bytes.NewBufferString(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		addCookies(req, cookies)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}

		// The session survives a failed update.
		next := httptest.NewRequest(http.MethodGet, "/home", nil)
		addCookies(next, cookies)
		if got := store.Username(next); got != "ann" {
			t.Fatalf("session should survive failed update, got %q", got)
		}
	})

	t.Run("validation failure skips the service", func(t *testing.T) {
		profile := &mockProfile{}
		r, store := newTestRouter(&service.Service{Profile: profile})
		cookies := loginAs(t, store, "ann")

		// password below the 8-char floor
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/myprofile",
			bytes.NewBufferString("fullname=Ann&email=ann%40example.com&password=short"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		addCookies(req, cookies)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if profile.updateCalls != 0 {
			t.Fatalf("service must not be called on validation failure")
		}
	})
}
