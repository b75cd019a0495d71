package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	for _, c := range []lipgloss.Color{
		theme.Accent, theme.Keyword, theme.LongTail, theme.Foreground,
		theme.Muted, theme.Success, theme.Error, theme.Border, theme.Bar,
	} {
		assert.NotEmpty(t, string(c))
	}
}

func TestDefaultTheme_KeywordColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[string]bool)
	for _, c := range []lipgloss.Color{theme.Accent, theme.Keyword, theme.LongTail, theme.Error} {
		s := string(c)
		assert.False(t, seen[s], "duplicate colour: %s", s)
		seen[s] = true
	}
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_Render(t *testing.T) {
	styles := DefaultStyles()

	assert.Contains(t, styles.Title.Render("Columns"), "Columns")
	assert.Contains(t, styles.Primary.Render("cats"), "cats")
	assert.Contains(t, styles.LongTail.Render("dogs"), "dogs")
	assert.Contains(t, styles.TabActive.Render("Topics"), "Topics")
}
