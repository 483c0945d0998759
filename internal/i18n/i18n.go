// Package i18n provides the English, Marathi and Hindi message catalog and
// language negotiation for API responses.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localesFS embed.FS

// Lang is a supported content language. Values match the dashboard's language store.
type Lang string

const (
	English Lang = "english"
	Marathi Lang = "marathi"
	Hindi   Lang = "hindi"
)

// Default is used when no preference can be resolved.
const Default = English

// Supported lists the languages in matcher priority order; the first is the fallback.
var Supported = []Lang{English, Marathi, Hindi}

var tags = map[Lang]language.Tag{
	English: language.English,
	Marathi: language.Marathi,
	Hindi:   language.Hindi,
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Marathi, language.Hindi})

// Tag returns the BCP 47 tag of l.
func (l Lang) Tag() language.Tag {
	if t, ok := tags[l]; ok {
		return t
	}
	return language.English
}

// Code returns the short language code (en, mr, hi).
func (l Lang) Code() string {
	base, _ := l.Tag().Base()
	return base.String()
}

// Parse accepts a language name ("marathi") or a BCP 47 tag ("mr", "mr-IN").
func Parse(s string) (Lang, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	for _, l := range Supported {
		if s == string(l) {
			return l, true
		}
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, l := range Supported {
		if l.Code() == base.String() {
			return l, true
		}
	}
	return "", false
}

// MatchAcceptLanguage picks the best supported language for an Accept-Language header.
func MatchAcceptLanguage(header string) Lang {
	if strings.TrimSpace(header) == "" {
		return Default
	}
	_, idx := language.MatchStrings(matcher, header)
	if idx < 0 || idx >= len(Supported) {
		return Default
	}
	return Supported[idx]
}

type langKey struct{}

// WithLang returns a context carrying lang.
func WithLang(ctx context.Context, lang Lang) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// FromContext returns the request language, or Default when none was set.
func FromContext(ctx context.Context) Lang {
	if l, ok := ctx.Value(langKey{}).(Lang); ok {
		return l
	}
	return Default
}

// Catalog holds translated messages for every supported language.
// It is read-only after Load and safe for concurrent use.
type Catalog struct {
	messages map[Lang]map[string]string
}

// Load reads the embedded locale files.
func Load() (*Catalog, error) {
	c := &Catalog{messages: make(map[Lang]map[string]string, len(Supported))}
	for _, l := range Supported {
		raw, err := localesFS.ReadFile("locales/" + l.Code() + ".json")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", l, err)
		}
		msgs := make(map[string]string)
		if err := json.Unmarshal(raw, &msgs); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", l, err)
		}
		c.messages[l] = msgs
	}
	return c, nil
}

// MustLoad is Load for program start-up and tests; it panics on a broken embedded catalog.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// T returns the message for key in lang, falling back to English and then to the key itself.
// Args are applied with fmt.Sprintf when present.
func (c *Catalog) T(lang Lang, key string, args ...any) string {
	msg, ok := c.messages[lang][key]
	if !ok {
		msg, ok = c.messages[Default][key]
	}
	if !ok {
		msg = key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Tctx is T with the language taken from ctx.
func (c *Catalog) Tctx(ctx context.Context, key string, args ...any) string {
	return c.T(FromContext(ctx), key, args...)
}

// Keys returns the message keys defined for lang.
func (c *Catalog) Keys(lang Lang) []string {
	keys := make([]string, 0, len(c.messages[lang]))
	for k := range c.messages[lang] {
		keys = append(keys, k)
	}
	return keys
}
