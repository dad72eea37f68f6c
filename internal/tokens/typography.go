package tokens

import (
	"strings"

	"github.com/samber/lo"
)

// FontSize pairs a font size with its default line height.
type FontSize struct {
	Name       string
	Size       string
	LineHeight string
}

var (
	FontFamilies = Scale{
		{"sans", "Inter, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif"},
		{"mono", "'JetBrains Mono', 'Fira Code', Monaco, Consolas, 'Liberation Mono', 'Courier New', monospace"},
		{"display", "'Cal Sans', Inter, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif"},
	}

	FontSizes = []FontSize{
		{"xs", "0.75rem", "1rem"},
		{"sm", "0.875rem", "1.25rem"},
		{"base", "1rem", "1.5rem"},
		{"lg", "1.125rem", "1.75rem"},
		{"xl", "1.25rem", "1.75rem"},
		{"2xl", "1.5rem", "2rem"},
		{"3xl", "1.875rem", "2.25rem"},
		{"4xl", "2.25rem", "2.5rem"},
		{"5xl", "3rem", "1"},
		{"6xl", "3.75rem", "1"},
		{"7xl", "4.5rem", "1"},
		{"8xl", "6rem", "1"},
		{"9xl", "8rem", "1"},
	}

	FontWeights = Scale{
		{"thin", "100"},
		{"extralight", "200"},
		{"light", "300"},
		{"normal", "400"},
		{"medium", "500"},
		{"semibold", "600"},
		{"bold", "700"},
		{"extrabold", "800"},
		{"black", "900"},
	}

	LineHeights = Scale{
		{"none", "1"},
		{"tight", "1.25"},
		{"snug", "1.375"},
		{"normal", "1.5"},
		{"relaxed", "1.625"},
		{"loose", "2"},
	}

	LetterSpacing = Scale{
		{"tighter", "-0.05em"},
		{"tight", "-0.025em"},
		{"normal", "0em"},
		{"wide", "0.025em"},
		{"wider", "0.05em"},
		{"widest", "0.1em"},
	}
)

// TextStyle is a semantic typography preset exposed as a text-<name> utility.
// Empty fields inherit from the surrounding text.
type TextStyle struct {
	Name       string
	Size       string
	LineHeight string
	Weight     string
	Tracking   string
	Family     string
}

func style(name, size, weight, leading, tracking, family string) TextStyle {
	fs, ok := lo.Find(FontSizes, func(f FontSize) bool { return f.Name == size })
	if !ok {
		panic("tokens: unknown font size " + size)
	}
	ts := TextStyle{
		Name:       name,
		Size:       fs.Size,
		LineHeight: fs.LineHeight,
		Weight:     mustLookup(FontWeights, weight),
	}
	if leading != "" {
		ts.LineHeight = mustLookup(LineHeights, leading)
	}
	if tracking != "" {
		ts.Tracking = mustLookup(LetterSpacing, tracking)
	}
	if family != "" {
		ts.Family = mustLookup(FontFamilies, family)
	}
	return ts
}

// TextStyles lists the semantic presets: display, heading, body, label and code.
var TextStyles = []TextStyle{
	style("display-2xl", "7xl", "bold", "", "tight", "display"),
	style("display-xl", "6xl", "bold", "", "tight", "display"),
	style("display-lg", "5xl", "bold", "", "tight", "display"),
	style("display-md", "4xl", "bold", "", "tight", "display"),
	style("display-sm", "3xl", "bold", "", "tight", "display"),

	style("heading-1", "4xl", "bold", "tight", "", ""),
	style("heading-2", "3xl", "bold", "tight", "", ""),
	style("heading-3", "2xl", "semibold", "snug", "", ""),
	style("heading-4", "xl", "semibold", "snug", "", ""),
	style("heading-5", "lg", "semibold", "normal", "", ""),
	style("heading-6", "base", "semibold", "normal", "", ""),

	style("body-lg", "lg", "normal", "relaxed", "", ""),
	style("body-md", "base", "normal", "normal", "", ""),
	style("body-sm", "sm", "normal", "normal", "", ""),

	style("label-lg", "sm", "medium", "normal", "", ""),
	style("label-md", "xs", "medium", "normal", "", ""),
	style("label-sm", "xs", "normal", "normal", "", ""),

	style("code-lg", "base", "normal", "", "", "mono"),
	style("code-md", "sm", "normal", "", "", "mono"),
	style("code-sm", "xs", "normal", "", "", "mono"),
}

// TextStyleClasses returns the preset names usable as text-<name> font-size utilities.
func TextStyleClasses() []string {
	return lo.Map(TextStyles, func(ts TextStyle, _ int) string { return ts.Name })
}

// TextStyleByName returns the preset registered under name, accepting an optional
// "text-" prefix.
func TextStyleByName(name string) (TextStyle, bool) {
	name = strings.TrimPrefix(name, "text-")
	return lo.Find(TextStyles, func(ts TextStyle) bool { return ts.Name == name })
}
