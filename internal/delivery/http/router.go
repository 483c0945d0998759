package http

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	"sitecms/internal/delivery/http/controllers"
	"sitecms/internal/delivery/http/middleware"
	"sitecms/internal/domain"
	"sitecms/internal/i18n"
)

// contentRoutes is implemented by every ContentController instance.
type contentRoutes interface {
	Kind() domain.ResourceKind
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// RouterConfig holds everything NewRouter wires together.
type RouterConfig struct {
	Logger         *slog.Logger
	Catalog        *i18n.Catalog
	AllowedOrigins []string
	// TrustedProxies may set X-Forwarded-For and X-Real-IP; empty means only the peer address counts.
	TrustedProxies middleware.TrustedProxies
	// StaticDir holds the built dashboard; empty disables static serving.
	StaticDir string

	Committee   *controllers.ContentController[*domain.Member]
	Showcases   []*controllers.ContentController[*domain.Showcase]
	Auth        *controllers.AuthController
	Preferences *controllers.PreferencesController
	Health      *controllers.HealthController

	LoginLimiter *middleware.LoginRateLimiter
	// WriteVerifier, when set, requires a Bearer token on content writes.
	WriteVerifier domain.TokenVerifier
}

// NewRouter initializes the HTTP router with all application routes and wraps it in the
// middleware chain: request ID, client address, logging, CORS, language, session gate.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	guard := func(next http.HandlerFunc) http.HandlerFunc { return next }
	if cfg.WriteVerifier != nil {
		guard = middleware.RequireAuthForWrites(cfg.WriteVerifier, cfg.Catalog, cfg.Logger)
	}

	routes := make([]contentRoutes, 0, 1+len(cfg.Showcases))
	if cfg.Committee != nil {
		routes = append(routes, cfg.Committee)
	}
	for _, c := range cfg.Showcases {
		routes = append(routes, c)
	}
	for _, c := range routes {
		p := "/api/" + string(c.Kind())
		mux.HandleFunc("GET "+p, c.Get)
		mux.HandleFunc("POST "+p, guard(c.Create))
		mux.HandleFunc("PUT "+p, guard(c.Update))
		mux.HandleFunc("DELETE "+p, guard(c.Delete))
	}

	// Auth
	login := cfg.Auth.Login
	if cfg.LoginLimiter != nil {
		login = cfg.LoginLimiter.Limit(login)
	}
	mux.HandleFunc("POST /api/login", login)
	mux.HandleFunc("POST /api/logout", cfg.Auth.Logout)

	// Preferences
	mux.HandleFunc("GET /api/preferences/language", cfg.Preferences.GetLanguage)
	mux.HandleFunc("PUT /api/preferences/language", cfg.Preferences.SetLanguage)

	if cfg.Health != nil {
		mux.HandleFunc("GET /healthz", cfg.Health.Health)
	}

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	if cfg.StaticDir != "" {
		mux.Handle("GET /", staticHandler(cfg.StaticDir))
	}

	var handler http.Handler = mux
	handler = middleware.SessionGate(handler)
	handler = middleware.Language(handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = middleware.RealIP(cfg.TrustedProxies, handler)
	handler = middleware.RequestID(handler)
	return handler
}

// staticHandler serves the exported dashboard. A path without an extension is resolved
// to "<path>.html" when that file exists, matching how the dashboard is exported.
func staticHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)
		if clean != "/" && path.Ext(clean) == "" {
			candidate := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))+".html")
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				r2 := r.Clone(r.Context())
				r2.URL.Path = clean + ".html"
				files.ServeHTTP(w, r2)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}
