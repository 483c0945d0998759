package i18n

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllLocalesHaveSameKeys(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	want := c.Keys(English)
	sort.Strings(want)
	require.NotEmpty(t, want)
	for _, l := range []Lang{Marathi, Hindi} {
		got := c.Keys(l)
		sort.Strings(got)
		assert.Equal(t, want, got, "locale %s", l)
	}
}

func TestCatalog_T(t *testing.T) {
	c := MustLoad()

	assert.Equal(t, "Member not found", c.T(English, "content.not_found", c.T(English, "kind.committee")))
	assert.Equal(t, "Invalid password", c.T(English, "login.invalid_password"))
	assert.Equal(t, "अवैध पासवर्ड", c.T(Marathi, "login.invalid_password"))
	assert.Equal(t, "no.such.key", c.T(Hindi, "no.such.key"))
	assert.Equal(t, "Invalid password", c.T(Lang("klingon"), "login.invalid_password"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
		ok   bool
	}{
		{"english", English, true},
		{"Marathi", Marathi, true},
		{"hindi", Hindi, true},
		{"en", English, true},
		{"mr", Marathi, true},
		{"mr-IN", Marathi, true},
		{"hi-IN", Hindi, true},
		{"fr", "", false},
		{"", "", false},
		{"???", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	assert.Equal(t, English, MatchAcceptLanguage(""))
	assert.Equal(t, Marathi, MatchAcceptLanguage("mr-IN,mr;q=0.9,en;q=0.5"))
	assert.Equal(t, Hindi, MatchAcceptLanguage("hi"))
	assert.Equal(t, English, MatchAcceptLanguage("de-DE"))
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, English, FromContext(ctx))
	assert.Equal(t, Hindi, FromContext(WithLang(ctx, Hindi)))
}

func TestLang_Code(t *testing.T) {
	assert.Equal(t, "en", English.Code())
	assert.Equal(t, "mr", Marathi.Code())
	assert.Equal(t, "hi", Hindi.Code())
}
