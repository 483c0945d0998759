package middleware

import (
	"context"
	"net/http"
	"strings"
)

// LoggedInCookie is set by the login endpoint and read by the session gate.
const LoggedInCookie = "loggedIn"

// DashboardPrefix is the path guarded by SessionGate.
const DashboardPrefix = "/dashboard"

// Session is the per-request view of the dashboard session.
// The cookie is the only state: nothing is validated server-side.
type Session struct {
	Authenticated bool
}

type sessionKey struct{}

// SessionFromContext returns the Session stored by SessionGate.
func SessionFromContext(ctx context.Context) Session {
	s, _ := ctx.Value(sessionKey{}).(Session)
	return s
}

// SessionGate redirects unauthenticated requests for /dashboard and anything below it to "/"
// with 307, for every method. All other requests pass through with the Session in context.
func SessionGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := Session{Authenticated: hasLoggedInCookie(r)}
		if !s.Authenticated && isDashboardPath(r.URL.Path) {
			http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, s)))
	})
}

func hasLoggedInCookie(r *http.Request) bool {
	c, err := r.Cookie(LoggedInCookie)
	return err == nil && c.Value != ""
}

func isDashboardPath(path string) bool {
	return path == DashboardPrefix || strings.HasPrefix(path, DashboardPrefix+"/")
}
