package auth

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hongminglow/userauth-be/internal/models"
	"github.com/patrickmn/go-cache"
)

// SessionCookie is the cookie carrying the session id.
const SessionCookie = "session_id"

var _ Authenticator = (*SessionManager)(nil)

// SessionManager keeps authenticated sessions in an in-process TTL cache,
// keyed by a random session id handed to the client as an HttpOnly cookie.
// Sessions do not survive a restart; clients log in again to get a new one.
type SessionManager struct {
	sessions *cache.Cache
	ttl      time.Duration
}

// NewSessionManager creates a manager whose sessions expire after ttl.
func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: cache.New(ttl, ttl),
		ttl:      ttl,
	}
}

// Issue creates a server-side session for user and sets the session cookie.
func (s *SessionManager) Issue(w http.ResponseWriter, user models.User) (string, error) {
	id := uuid.NewString()
	s.sessions.Set(id, user.ID, s.ttl)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return "", nil
}

// Resolve maps the session cookie back to the user id it was issued for.
func (s *SessionManager) Resolve(r *http.Request) (int64, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return 0, ErrUnauthenticated
	}
	value, ok := s.sessions.Get(cookie.Value)
	if !ok {
		return 0, ErrUnauthenticated
	}
	return value.(int64), nil
}

// Revoke deletes the presented session and expires the cookie.
func (s *SessionManager) Revoke(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		s.sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
