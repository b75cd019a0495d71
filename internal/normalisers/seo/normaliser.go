// Package seo provides the tag normaliser used for SEO keyword extraction.
package seo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser lowercases a tag, folds diacritics, strips everything that is
// not a word character, whitespace or hyphen, and collapses whitespace.
// Output only contains [a-z0-9_\- ] with no leading, trailing or repeated
// spaces, so Normalise is idempotent.
type Normaliser struct{}

// New creates a new SEO tag normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the normaliser name.
func (n *Normaliser) Name() string {
	return "seo"
}

// Normalise cleans a single raw tag. It never fails; input made only of
// punctuation or unsupported scripts yields "".
func (n *Normaliser) Normalise(raw string) string {
	tag := foldDiacritics(strings.ToLower(strings.TrimSpace(raw)))

	var b strings.Builder
	b.Grow(len(tag))
	for _, r := range tag {
		switch {
		case isWordRune(r), r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	// Fields splits on any whitespace run, so the join collapses runs and
	// trims both ends.
	return strings.Join(strings.Fields(b.String()), " ")
}

// foldDiacritics maps accented letters to their base letter ("é" -> "e").
// Compatibility forms such as ligatures and full-width letters are
// decomposed too ("ﬁ" -> "fi").
// A transformer is built per call because transform chains are not safe
// for concurrent use.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
}
