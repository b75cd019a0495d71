package seo

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cleanAlphabet = regexp.MustCompile(`^[a-z0-9_\- ]*$`)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.Equal(t, "seo", normaliser.Name())
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and trims", "  Hello World  ", "hello world"},
		{"strips special characters", "C++ & Go!", "c go"},
		{"collapses tabs and newlines", "machine\tlearning\n", "machine learning"},
		{"collapses space runs", "big     data", "big data"},
		{"keeps hyphens", "E-Commerce", "e-commerce"},
		{"keeps underscores", "snake_case", "snake_case"},
		{"keeps digits", "Web 3.0", "web 30"},
		{"folds diacritics", "Café Crème", "cafe creme"},
		{"folds uppercase diacritics", "ÅNGSTRÖM", "angstrom"},
		{"folds ligatures", "ﬁsh ﬂour", "fish flour"},
		{"folds full-width letters", "Ｇｏ Ｌａｎｇ", "go lang"},
		{"non-breaking spaces", " nbsp tag ", "nbsp tag"},
		{"leading punctuation leaves no space", "! dog", "dog"},
		{"punctuation only", "!!!", ""},
		{"unsupported script", "東京", ""},
		{"empty", "", ""},
		{"whitespace only", " \t ", ""},
	}

	n := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalise(tt.in))
		})
	}
}

func TestNormalise_Properties(t *testing.T) {
	inputs := []string{
		"Cats", "  Dogs  ", "Machine   Learning", "a--b", "--x--", "Ünïcödé Têxt",
		"tab\tand\nnewline", "#hashtag", "emoji 🎉 party", "snake_case_Tag",
		"  - spaced - hyphen - ", "100% Cotton", "mIxEd CaSe", "Ω ohm", "",
	}

	n := New()
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := n.Normalise(in)

			assert.Equal(t, once, n.Normalise(once), "normalise must be idempotent")
			assert.Regexp(t, cleanAlphabet, once)
			assert.NotContains(t, once, "  ")
			assert.Equal(t, strings.TrimSpace(once), once)
		})
	}
}
