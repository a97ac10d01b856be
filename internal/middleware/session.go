package middleware

import (
	"context"
	"net/http"

	"github.com/mikebutak/Locastore/internal/session"
)

// unexported, collision-proof context key
type sessionContextKeyType struct{}

var sessionKey = sessionContextKeyType{}

// SessionFromContext extracts the request's session from context.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

type SessionMiddleware struct {
	Store session.Store
}

func NewSessionMiddleware(store session.Store) *SessionMiddleware {
	return &SessionMiddleware{Store: store}
}

var cookieOptions = session.CookieOptions{
	SameSite: http.SameSiteLaxMode,
}

// Attach loads the caller's session from the cookie, creating an
// anonymous one when the token is missing, unknown or expired, and
// puts it on the request context. Every request therefore sees a
// usable session.
func (m *SessionMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.load(r)

		if sess == nil {
			created, err := session.New()
			if err == nil {
				err = m.Store.Create(r.Context(), created)
			}
			if err != nil {
				// Degraded mode: continue without session state
				// rather than failing the whole request.
				next.ServeHTTP(w, r)
				return
			}
			session.SetCookie(w, created.ID, created.ExpiresAt, cookieOptions)
			sess = &created
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionMiddleware) load(r *http.Request) *session.Session {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sess, err := m.Store.Get(r.Context(), cookie.Value)
	if err != nil || sess == nil {
		return nil
	}

	if sess.Expired() {
		_ = m.Store.Delete(r.Context(), sess.ID)
		return nil
	}

	return sess
}
