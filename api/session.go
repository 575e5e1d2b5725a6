package api

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"

	"github.com/danielsolis/portfolio-site-backend/errs"
)

// Role values carried in the session cookie. Every new session starts as a
// visitor; only a successful login promotes it.
const (
	RoleVisitor = "visitor"
	RoleAdmin   = "admin"
)

const (
	sessionName = "portfolio_session"
	roleKey     = "role"
)

// sessionManager wraps a signed cookie store so role state is scoped to the
// caller, not to the process.
type sessionManager struct {
	store     *sessions.CookieStore
	responder Responder
}

func newSessionManager(secret string, secure bool) sessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 7)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode

	logger := log.With().Str("handlerName", "sessionManager").Logger()
	return sessionManager{
		store:     store,
		responder: NewResponder(logger),
	}
}

// Role reads the caller's role, defaulting to visitor for new or undecodable
// sessions.
func (m sessionManager) Role(r *http.Request) string {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return RoleVisitor
	}
	role, ok := session.Values[roleKey].(string)
	if !ok || role != RoleAdmin {
		return RoleVisitor
	}
	return role
}

// SetRole writes the role into the caller's session cookie. A stale or
// tampered cookie fails to decode, but the store still hands back a usable
// fresh session; writing into it replaces the bad cookie.
func (m sessionManager) SetRole(w http.ResponseWriter, r *http.Request, role string) error {
	session, err := m.store.Get(r, sessionName)
	if session == nil {
		return err
	}
	session.Values[roleKey] = role
	return session.Save(r, w)
}

// requireAdmin gates the mutating project routes. Authorization is enforced
// here, not merely hidden in the rendered view.
func (m sessionManager) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Role(r) != RoleAdmin {
			m.responder.WriteError(w, errs.NewUnauthorizedError("administrator login required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
