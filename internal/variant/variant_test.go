package variant

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := New("badge",
		"inline-flex items-center rounded-badge px-2 py-1 text-label-sm font-medium transition-all duration-200",
		Axis{
			Name:    "variant",
			Default: "primary",
			Options: []Option{
				{Key: "primary", Classes: "bg-primary-100 text-primary-800 border border-primary-200"},
				{Key: "success", Classes: "bg-success-100 text-success-800 border border-success-200"},
				{Key: "outline", Classes: "border border-border-primary text-text-secondary bg-transparent"},
			},
		},
		Axis{
			Name:    "size",
			Default: "md",
			Options: []Option{
				{Key: "sm", Classes: "px-1.5 py-0.5 text-xs"},
				{Key: "md", Classes: "px-2 py-1 text-xs"},
				{Key: "lg", Classes: "px-3 py-1.5 text-sm"},
			},
		},
		BoolAxis("dot", false, "pl-1.5", ""),
	)
	require.NoError(t, err)
	return s
}

func fields(s string) []string { return strings.Fields(s) }

func TestResolveSelectedVariantAndFlag(t *testing.T) {
	s := badgeSchema(t)

	got, err := NewResolver().Resolve(s, Selection{"variant": "success", "dot": True})
	require.NoError(t, err)

	classes := fields(got)
	for _, class := range fields("bg-success-100 text-success-800 border border-success-200") {
		assert.Contains(t, classes, class)
	}
	assert.Contains(t, classes, "pl-1.5")
	for _, class := range fields("bg-primary-100 text-primary-800 border-primary-200") {
		assert.NotContains(t, classes, class)
	}
}

func TestResolveFallsBackToDefaults(t *testing.T) {
	s := badgeSchema(t)

	got, err := NewResolver().Resolve(s, nil)
	require.NoError(t, err)
	classes := fields(got)
	assert.Contains(t, classes, "bg-primary-100")
	assert.Contains(t, classes, "text-xs")
	assert.NotContains(t, classes, "pl-1.5")
	assert.NotContains(t, classes, "bg-success-100")

	explicitEmpty, err := NewResolver().Resolve(s, Selection{"variant": "", "size": ""})
	require.NoError(t, err)
	assert.Equal(t, got, explicitEmpty)
}

func TestResolveOverrideWinsConflicts(t *testing.T) {
	s := badgeSchema(t)

	got, err := NewResolver().Resolve(s, Selection{"size": "lg"}, "px-8 bg-black custom-shadow")
	require.NoError(t, err)
	classes := fields(got)
	assert.Contains(t, classes, "px-8")
	assert.Contains(t, classes, "bg-black")
	assert.Contains(t, classes, "custom-shadow")
	assert.NotContains(t, classes, "px-3")
	assert.NotContains(t, classes, "bg-primary-100")
	assert.Contains(t, classes, "py-1.5")
}

func TestResolveLaterAxisWinsTies(t *testing.T) {
	s, err := New("tie", "", Axis{
		Name: "tone", Default: "a",
		Options: []Option{{Key: "a", Classes: "text-red-500"}},
	}, Axis{
		Name: "emphasis", Default: "b",
		Options: []Option{{Key: "b", Classes: "text-blue-500"}},
	})
	require.NoError(t, err)

	got, err := s.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "text-blue-500", got)
}

func TestResolveUnknownOption(t *testing.T) {
	s := badgeSchema(t)

	got, err := NewResolver().Resolve(s, Selection{"variant": "nonexistent"})
	assert.Empty(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOption))

	var optErr *UnknownOptionError
	require.True(t, errors.As(err, &optErr))
	assert.Equal(t, "badge", optErr.Schema)
	assert.Equal(t, "variant", optErr.Axis)
	assert.Equal(t, "nonexistent", optErr.Option)
	assert.Equal(t, []string{"primary", "success", "outline"}, optErr.Known)

	_, again := NewResolver().Resolve(s, Selection{"variant": "nonexistent"})
	assert.Equal(t, err.Error(), again.Error())
}

func TestResolveUnknownBooleanValue(t *testing.T) {
	s := badgeSchema(t)

	_, err := s.Resolve(Selection{"dot": "yes"})
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestResolveUnknownAxis(t *testing.T) {
	s := badgeSchema(t)

	_, err := s.Resolve(Selection{"tone": "loud", "colour": "red"})
	require.ErrorIs(t, err, ErrUnknownAxis)
	var axisErr *UnknownAxisError
	require.ErrorAs(t, err, &axisErr)
	assert.Equal(t, "colour", axisErr.Axis)
	assert.Equal(t, []string{"variant", "size", "dot"}, axisErr.Known)
}

func TestResolveIsDeterministic(t *testing.T) {
	s := badgeSchema(t)
	r := NewResolver()
	first, err := r.Resolve(s, Selection{"variant": "outline", "size": "sm"}, "w-full")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := r.Resolve(s, Selection{"variant": "outline", "size": "sm"}, "w-full")
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestNewRejectsMalformedSchemas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		axes []Axis
	}{
		{"missing default", []Axis{{Name: "size", Options: []Option{{Key: "sm"}}}}},
		{"default not declared", []Axis{{Name: "size", Default: "xl", Options: []Option{{Key: "sm"}}}}},
		{"duplicate option", []Axis{{Name: "size", Default: "sm", Options: []Option{{Key: "sm", Classes: "a"}, {Key: "sm", Classes: "b"}}}}},
		{"empty option key", []Axis{{Name: "size", Default: "sm", Options: []Option{{Key: "sm"}, {Key: ""}}}}},
		{"unnamed axis", []Axis{{Default: "sm", Options: []Option{{Key: "sm"}}}}},
		{"duplicate axis", []Axis{BoolAxis("dot", false, "a", ""), BoolAxis("dot", true, "b", "")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := New("broken", "base", tt.axes...)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrMalformedSchema)
			var malformed *MalformedSchemaError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestMustPanicsOnMalformedSchema(t *testing.T) {
	assert.Panics(t, func() {
		Must(New("broken", "", Axis{Name: "size"}))
	})
}

func TestSchemaIntrospection(t *testing.T) {
	s := badgeSchema(t)

	assert.Equal(t, "badge", s.Name())
	assert.Equal(t, []string{"variant", "size", "dot"}, s.Axes())
	assert.Equal(t, []string{"sm", "md", "lg"}, s.Options("size"))
	assert.Nil(t, s.Options("missing"))

	def, ok := s.Default("dot")
	assert.True(t, ok)
	assert.Equal(t, False, def)

	fragment, ok := s.Fragment("dot", True)
	assert.True(t, ok)
	assert.Equal(t, "pl-1.5", fragment)
}

func TestResolverCacheMemoisesSuccessesOnly(t *testing.T) {
	s := badgeSchema(t)

	var mu sync.Mutex
	var hits, misses, failures int
	r := NewResolver(WithCache(8), WithObserver(ObserverFunc(func(schema string, cached bool, err error) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case err != nil:
			failures++
		case cached:
			hits++
		default:
			misses++
		}
	})))

	first, err := r.Resolve(s, Selection{"variant": "success"})
	require.NoError(t, err)
	second, err := r.Resolve(s, Selection{"variant": "success", "size": "md"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	_, err = r.Resolve(s, Selection{"variant": "nope"})
	require.Error(t, err)

	assert.Equal(t, 1, r.CacheLen())
	assert.Equal(t, 1, misses)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, failures)
}

func TestResolverConcurrentUse(t *testing.T) {
	s := badgeSchema(t)
	r := NewResolver(WithCache(4))
	want, err := r.Resolve(s, Selection{"variant": "outline"}, "w-full")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Resolve(s, Selection{"variant": "outline"}, "w-full")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestSetDefaultReplacesResolver(t *testing.T) {
	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	replacement := NewResolver(WithCache(2))
	SetDefault(replacement)
	assert.Same(t, replacement, Default())
	assert.Panics(t, func() { SetDefault(nil) })
}

func TestRegistry(t *testing.T) {
	badge := badgeSchema(t)
	card := Must(New("card", "rounded-card"))

	reg, err := NewRegistry(card, badge)
	require.NoError(t, err)
	assert.Equal(t, []string{"badge", "card"}, reg.Names())

	got, ok := reg.Lookup("badge")
	assert.True(t, ok)
	assert.Same(t, badge, got)

	assert.ErrorIs(t, reg.Register(badge), ErrMalformedSchema)
	assert.ErrorIs(t, reg.Register(Must(New("", "x"))), ErrMalformedSchema)
}

const schemaYAML = `
schemas:
  - name: pill
    base: inline-flex   rounded-full
    axes:
      - name: tone
        default: neutral
        options:
          - {key: neutral, class: bg-neutral-100 text-neutral-800}
          - {key: danger, class: bg-error-100 text-error-800}
      - name: solid
        default: "false"
        options:
          - {key: "true", class: shadow-sm}
          - {key: "false", class: ""}
`

func TestLoadFileDecodesSchemas(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/schemas/pill.yaml", []byte(schemaYAML), 0o644))

	schemas, err := LoadFile(fs, "/schemas/pill.yaml")
	require.NoError(t, err)
	require.Len(t, schemas, 1)

	pill := schemas[0]
	assert.Equal(t, "pill", pill.Name())
	assert.Equal(t, "inline-flex rounded-full", pill.Base())

	got, err := pill.Resolve(Selection{"tone": "danger", "solid": True})
	require.NoError(t, err)
	assert.Equal(t, "inline-flex rounded-full bg-error-100 text-error-800 shadow-sm", got)
}

func TestLoadFileRejectsInvalidDefinitions(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte(`
schemas:
  - name: bad
    axes:
      - name: tone
        options:
          - {key: a, class: x}
`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "typo.yaml", []byte("schemas:\n  - nmae: oops\n"), 0o644))

	_, err := LoadFile(fs, "bad.yaml")
	assert.ErrorIs(t, err, ErrMalformedSchema)

	_, err = LoadFile(fs, "typo.yaml")
	assert.Error(t, err)

	_, err = LoadFile(fs, "missing.yaml")
	assert.Error(t, err)
}
