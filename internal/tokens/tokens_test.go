package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashkit/internal/classmerge"
)

func TestTextStyleClassesClassifyAsFontSize(t *testing.T) {
	names := TextStyleClasses()
	require.NotEmpty(t, names)
	assert.ElementsMatch(t, classmerge.DesignTextStyles, names)

	for _, name := range names {
		assert.Equal(t, "font-size", classmerge.Default().Group("text-"+name), name)
	}
	assert.Equal(t, "text-xs", classmerge.Merge("text-label-sm", "text-xs"))
}

func TestTextStyleByName(t *testing.T) {
	heading, ok := TextStyleByName("text-heading-3")
	require.True(t, ok)
	assert.Equal(t, "1.5rem", heading.Size)
	assert.Equal(t, "600", heading.Weight)
	assert.Equal(t, "1.375", heading.LineHeight)

	display, ok := TextStyleByName("display-lg")
	require.True(t, ok)
	assert.Equal(t, "1", display.LineHeight)
	assert.Equal(t, "-0.025em", display.Tracking)
	assert.Contains(t, display.Family, "Cal Sans")

	_, ok = TextStyleByName("heading-9")
	assert.False(t, ok)
}

func TestColorLookup(t *testing.T) {
	hex, ok := Color("primary", "500")
	require.True(t, ok)
	assert.Equal(t, "#3b82f6", hex)

	hex, ok = Color("text", "muted")
	require.True(t, ok)
	assert.Equal(t, "#9ca3af", hex)

	_, ok = Color("primary", "950")
	assert.False(t, ok)
	_, ok = Color("magenta", "500")
	assert.False(t, ok)
}

func TestPaletteOrder(t *testing.T) {
	palette := Palette()
	require.Len(t, palette, len(Colors)*10)
	assert.Equal(t, Swatch{Scale: "primary", Step: "50", Hex: "#eff6ff"}, palette[0])
	assert.Equal(t, Swatch{Scale: "neutral", Step: "900", Hex: "#111827"}, palette[len(palette)-1])
}

func TestSemanticAliasesFollowBaseScale(t *testing.T) {
	card, _ := SemanticShadows.Lookup("card")
	base, _ := Shadows.Lookup("base")
	assert.Equal(t, base, card)

	badge, _ := ComponentRadius.Lookup("badge")
	assert.Equal(t, "9999px", badge)
}

func TestStylesheet(t *testing.T) {
	css := Stylesheet()

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.Equal(t, css, Stylesheet())

	for _, want := range []string{
		"--color-primary-500: #3b82f6;",
		"--spacing-0_5: 0.125rem;",
		"--radius-badge: 9999px;",
		".rounded-badge { border-radius: var(--radius-badge); }",
		".shadow-card { box-shadow: var(--shadow-card); }",
		".text-label-sm { font-size: 0.75rem; line-height: 1.5; font-weight: 400; }",
		`.hover\:bg-primary-600:hover { background-color: var(--color-primary-600); }`,
		".bg-background-primary { background-color: var(--color-background-primary); }",
		".focus-ring:focus { outline: none; box-shadow: var(--shadow-focus); }",
		".admin-card-hover:hover",
		".w-sidebar-collapsed",
	} {
		assert.Contains(t, css, want)
	}
}
