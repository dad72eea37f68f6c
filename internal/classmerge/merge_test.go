package classmerge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeKeepsLastClassPerGroup(t *testing.T) {
	got := Merge("px-2 py-1", "px-4")
	assert.Equal(t, "py-1 px-4", got)
}

func TestMergeKeepsFirstSeenPosition(t *testing.T) {
	assert.Equal(t, "px-4 foo", Merge("px-4 foo", "px-4"))
	assert.Equal(t, "px-4 foo", Merge("px-4 foo px-4"))
	assert.Equal(t, "text-sm bg-blue-500 rounded", Merge("text-sm bg-blue-500 rounded", "text-sm"))
	assert.Equal(t, "custom-foo bg-blue-500", Merge("bg-red-500 custom-foo", "bg-blue-500"))
}

func TestMergeNarrowClassStaysAfterWiderWinner(t *testing.T) {
	assert.Equal(t, "p-4 px-2", Merge("px-2 p-4 px-2"))
	assert.Equal(t, "m-1 p-4 px-2", Merge("px-2 m-1 p-4 px-2"))
	assert.Equal(t, "p-2", Merge("p-4 px-2", "p-2"))
}

func TestMergeSkipsEmptyInputs(t *testing.T) {
	assert.Equal(t, "text-sm", Merge("", "text-sm"))
	assert.Equal(t, "", Merge())
	assert.Equal(t, "", Merge("", "   ", "\t\n"))
	assert.Equal(t, "a b", Merge("  a   ", "", " b "))
}

func TestMergePreservesUnknownClasses(t *testing.T) {
	got := strings.Fields(Merge("bg-red-500 custom-foo", "bg-blue-500"))
	assert.Contains(t, got, "custom-foo")
	assert.Contains(t, got, "bg-blue-500")
	assert.NotContains(t, got, "bg-red-500")
}

func TestMergeCollapsesExactDuplicates(t *testing.T) {
	assert.Equal(t, "btn focus-ring", Merge("btn focus-ring", "btn", "focus-ring"))
}

func TestMergeConflictResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lists []string
		want  string
	}{
		{"font size beats font size", []string{"text-sm", "text-lg"}, "text-lg"},
		{"font size and colour coexist", []string{"text-sm text-red-500"}, "text-sm text-red-500"},
		{"alignment is separate", []string{"text-left text-lg", "text-center"}, "text-lg text-center"},
		{"design text style is a font size", []string{"text-label-sm", "text-xs"}, "text-xs"},
		{"bg colour", []string{"bg-primary-500 bg-cover", "bg-secondary-100"}, "bg-cover bg-secondary-100"},
		{"bg opacity postfix", []string{"bg-primary hover:bg-primary/90", "hover:bg-accent"}, "bg-primary hover:bg-accent"},
		{"modifiers scope groups", []string{"bg-white hover:bg-gray-100", "bg-black"}, "hover:bg-gray-100 bg-black"},
		{"modifier order is irrelevant", []string{"hover:focus:bg-red-500", "focus:hover:bg-blue-500"}, "focus:hover:bg-blue-500"},
		{"border width and colour", []string{"border border-border-primary", "border-2 border-border-secondary"}, "border-2 border-border-secondary"},
		{"border style", []string{"border-solid border-dashed"}, "border-dashed"},
		{"padding shorthand wins later", []string{"px-2 py-1", "p-4"}, "p-4"},
		{"narrow padding after shorthand", []string{"p-4", "px-2"}, "p-4 px-2"},
		{"side padding keeps axis", []string{"px-2", "pl-1.5"}, "px-2 pl-1.5"},
		{"axis padding removes side", []string{"pl-1.5", "px-2"}, "px-2"},
		{"negative margin", []string{"mt-2", "-mt-1"}, "-mt-1"},
		{"important is its own scope", []string{"!p-2 p-4"}, "!p-2 p-4"},
		{"width", []string{"w-auto", "w-64"}, "w-64"},
		{"size removes width", []string{"w-4 h-4", "size-6"}, "size-6"},
		{"radius", []string{"rounded-md", "rounded-card"}, "rounded-card"},
		{"radius corner after shorthand", []string{"rounded-lg rounded-t-none"}, "rounded-lg rounded-t-none"},
		{"shadow", []string{"shadow-card", "shadow-none"}, "shadow-none"},
		{"ring width and colour", []string{"ring-2 ring-ring", "ring-4"}, "ring-ring ring-4"},
		{"ring offset", []string{"ring-offset-2 ring-offset-background", "ring-offset-4"}, "ring-offset-background ring-offset-4"},
		{"font weight vs family", []string{"font-medium font-mono", "font-bold"}, "font-mono font-bold"},
		{"display", []string{"block", "inline-flex"}, "inline-flex"},
		{"flex direction vs display", []string{"flex flex-col", "flex-row"}, "flex flex-row"},
		{"arbitrary values", []string{"w-[350px]", "w-full"}, "w-full"},
		{"arbitrary property", []string{"[mask-type:luminance]", "[mask-type:alpha]"}, "[mask-type:alpha]"},
		{"arbitrary variant", []string{"data-[state=open]:opacity-0", "data-[state=open]:opacity-100"}, "data-[state=open]:opacity-100"},
		{"fractions", []string{"w-1/2", "w-1/3"}, "w-1/3"},
		{"unknown stays", []string{"admin-card", "focus-ring-error", "admin-card"}, "admin-card focus-ring-error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Merge(tt.lists...))
		})
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"px-2 py-1", "px-4"},
		{"px-2 m-1 p-4 px-2"},
		{"px-2 p-4 px-2"},
		{"px-4 foo", "px-4"},
		{"pl-1 px-2 p-4 pl-1", "px-3"},
		{"a b a", "c"},
		{"inline-flex items-center rounded-badge px-2 py-1 text-label-sm", "bg-success-100 text-success-800 border border-success-200", "px-2 py-1 text-xs", "pl-1.5"},
		{"hover:bg-red-500 bg-red-500 hover:bg-blue-500 custom"},
	}

	for _, lists := range inputs {
		once := Merge(lists...)
		assert.Equal(t, once, Merge(once), "lists %q", lists)
	}
}

func TestMergeIsDeterministic(t *testing.T) {
	lists := []string{"btn inline-flex px-4 py-2 text-sm", "px-6 py-3 text-base", "w-auto", "w-full custom"}
	first := Merge(lists...)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, Merge(lists...))
	}
}

func TestGroupReportsConflictKeys(t *testing.T) {
	m := Default()
	assert.Equal(t, "px", m.Group("px-4"))
	assert.Equal(t, "hover:bg-color", m.Group("hover:bg-primary-600"))
	assert.Equal(t, "font-size", m.Group("text-heading-3"))
	assert.Equal(t, "", m.Group("admin-card"))
}

func TestWithFontSizesExtendsTextScale(t *testing.T) {
	plain := New()
	assert.Equal(t, "text-color", plain.Group("text-caption"))

	custom := New(WithFontSizes("text-caption", " ", "tiny"))
	assert.Equal(t, "font-size", custom.Group("text-caption"))
	assert.Equal(t, "font-size", custom.Group("text-tiny"))
	assert.Equal(t, "text-tiny", custom.Merge("text-caption", "text-tiny"))
}

func TestSplitModifiersRespectsBrackets(t *testing.T) {
	modifiers, base := splitModifiers("md:data-[state=open]:[mask-type:alpha]")
	assert.Equal(t, []string{"md", "data-[state=open]"}, modifiers)
	assert.Equal(t, "[mask-type:alpha]", base)
}
