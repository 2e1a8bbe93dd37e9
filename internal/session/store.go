package session

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	cookieName = "techsphere_session"

	sessionIDKey = "sid"

	maxAgeSeconds = 86400 // one day
)

type entry struct {
	username string
	token    string
}

// Store backs the session middleware: the signed cookie carries only an
// opaque session id, the authenticated identity lives server-side. Destroying
// the server-side entry invalidates every copy of the cookie, so a replayed
// cookie after logout is rejected.
//
// The session carries only the username (plus the login-minted token); the
// user record is always re-fetched from the database, never cached here.
type Store struct {
	cookies *sessions.CookieStore

	mu   sync.RWMutex
	live map[string]entry
}

func NewStore(secret string) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{
		cookies: cs,
		live:    make(map[string]entry),
	}
}

// lookup resolves the request's cookie to a live server-side entry. A
// missing, tampered or destroyed session reads as absent.
func (s *Store) lookup(r *http.Request) (entry, bool) {
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		return entry{}, false
	}
	sid, _ := sess.Values[sessionIDKey].(string)
	if sid == "" {
		return entry{}, false
	}

	s.mu.RLock()
	e, ok := s.live[sid]
	s.mu.RUnlock()
	return e, ok
}

// Username returns the authenticated username, or "" when the request
// carries no valid session.
func (s *Store) Username(r *http.Request) string {
	e, ok := s.lookup(r)
	if !ok {
		return ""
	}
	return e.username
}

// Token returns the login-minted token stored alongside the username.
func (s *Store) Token(r *http.Request) string {
	e, ok := s.lookup(r)
	if !ok {
		return ""
	}
	return e.token
}

// SetUser establishes a fresh session for the given username.
func (s *Store) SetUser(w http.ResponseWriter, r *http.Request, username, token string) error {
	sid := uuid.NewString()

	s.mu.Lock()
	s.live[sid] = entry{username: username, token: token}
	s.mu.Unlock()

	sess, _ := s.cookies.Get(r, cookieName) // Get returns a fresh session on decode errors
	sess.Values[sessionIDKey] = sid
	return sess.Save(r, w)
}

// Clear destroys the session unconditionally: the server-side entry is
// removed and the cookie expired.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, cookieName)
	if sid, _ := sess.Values[sessionIDKey].(string); sid != "" {
		s.mu.Lock()
		delete(s.live, sid)
		s.mu.Unlock()
	}

	delete(sess.Values, sessionIDKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
