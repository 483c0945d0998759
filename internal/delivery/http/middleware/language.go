package middleware

import (
	"context"
	"net/http"

	"sitecms/internal/i18n"
)

// LangCookie stores the visitor's language choice.
const LangCookie = "lang"

// Preferences carries per-request user preferences.
type Preferences struct {
	Lang i18n.Lang
}

type preferencesKey struct{}

// PreferencesFromContext returns the Preferences stored by Language, or defaults.
func PreferencesFromContext(ctx context.Context) Preferences {
	if p, ok := ctx.Value(preferencesKey{}).(Preferences); ok {
		return p
	}
	return Preferences{Lang: i18n.Default}
}

// WithPreferences returns ctx carrying p; the language is also made available to the i18n catalog.
func WithPreferences(ctx context.Context, p Preferences) context.Context {
	ctx = context.WithValue(ctx, preferencesKey{}, p)
	return i18n.WithLang(ctx, p.Lang)
}

// Language resolves the request language from, in order: the ?lang= query parameter,
// the lang cookie, the Accept-Language header, and the default.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := ResolveLanguage(r)
		next.ServeHTTP(w, r.WithContext(WithPreferences(r.Context(), Preferences{Lang: lang})))
	})
}

// ResolveLanguage applies the Language resolution order to r.
func ResolveLanguage(r *http.Request) i18n.Lang {
	if l, ok := i18n.Parse(r.URL.Query().Get("lang")); ok {
		return l
	}
	if c, err := r.Cookie(LangCookie); err == nil {
		if l, ok := i18n.Parse(c.Value); ok {
			return l
		}
	}
	return i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
}
