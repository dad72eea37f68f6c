// Package variant maps a closed set of semantic options (variant, size, boolean flags)
// onto utility class fragments and resolves them into one merged class string.
package variant

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// True is the option key of the enabled side of a BoolAxis.
	True = "true"
	// False is the option key of the disabled side of a BoolAxis.
	False = "false"
)

// Option is one selectable value of an axis and the classes it contributes.
type Option struct {
	Key     string
	Classes string
}

// Axis is a named dimension of variation with a closed option set and a default.
type Axis struct {
	Name    string
	Default string
	Options []Option
}

// BoolAxis builds a two-option axis keyed by True and False. An empty fragment is valid
// and contributes nothing.
func BoolAxis(name string, def bool, whenTrue, whenFalse string) Axis {
	return Axis{
		Name:    name,
		Default: Flag(def),
		Options: []Option{
			{Key: True, Classes: whenTrue},
			{Key: False, Classes: whenFalse},
		},
	}
}

// Flag converts a boolean into the matching BoolAxis option key.
func Flag(b bool) string {
	return strconv.FormatBool(b)
}

// Selection maps axis names to chosen option keys. Missing or empty entries resolve to
// the axis default.
type Selection map[string]string

type axis struct {
	name      string
	def       string
	keys      []string
	fragments map[string]string
}

// Schema is an immutable, validated variant definition. It is safe to share between
// goroutines.
type Schema struct {
	name  string
	base  string
	axes  []axis
	index map[string]int
}

// New validates the axes and builds a Schema. Axis order is significant: when two axes
// contribute classes from the same conflict group the later axis wins.
func New(name, base string, axes ...Axis) (*Schema, error) {
	s := &Schema{
		name:  name,
		base:  strings.Join(strings.Fields(base), " "),
		axes:  make([]axis, 0, len(axes)),
		index: make(map[string]int, len(axes)),
	}

	for _, def := range axes {
		axisName := strings.TrimSpace(def.Name)
		if axisName == "" {
			return nil, &MalformedSchemaError{Schema: name, Reason: "axis declared without a name"}
		}
		if _, dup := s.index[axisName]; dup {
			return nil, &MalformedSchemaError{Schema: name, Axis: axisName, Reason: "axis declared twice"}
		}
		if def.Default == "" {
			return nil, &MalformedSchemaError{Schema: name, Axis: axisName, Reason: "axis has no default option"}
		}

		a := axis{
			name:      axisName,
			def:       def.Default,
			keys:      make([]string, 0, len(def.Options)),
			fragments: make(map[string]string, len(def.Options)),
		}
		for _, opt := range def.Options {
			if opt.Key == "" {
				return nil, &MalformedSchemaError{Schema: name, Axis: axisName, Reason: "option declared without a key"}
			}
			if _, dup := a.fragments[opt.Key]; dup {
				return nil, &MalformedSchemaError{Schema: name, Axis: axisName, Reason: fmt.Sprintf("option %q declared twice", opt.Key)}
			}
			a.keys = append(a.keys, opt.Key)
			a.fragments[opt.Key] = opt.Classes
		}
		if _, ok := a.fragments[a.def]; !ok {
			return nil, &MalformedSchemaError{Schema: name, Axis: axisName, Reason: fmt.Sprintf("default %q is not a declared option", a.def)}
		}

		s.index[axisName] = len(s.axes)
		s.axes = append(s.axes, a)
	}

	return s, nil
}

// Must panics if err is non-nil. It is intended for package-level schema declarations.
func Must(s *Schema, err error) *Schema {
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name used in error messages and registries.
func (s *Schema) Name() string { return s.name }

// Base returns the whitespace-normalised base classes.
func (s *Schema) Base() string { return s.base }

// Axes returns the axis names in declaration order.
func (s *Schema) Axes() []string {
	names := make([]string, len(s.axes))
	for i, a := range s.axes {
		names[i] = a.name
	}
	return names
}

// Options returns the option keys of an axis in declaration order.
func (s *Schema) Options(axisName string) []string {
	i, ok := s.index[axisName]
	if !ok {
		return nil
	}
	return append([]string(nil), s.axes[i].keys...)
}

// Default returns the default option key of an axis.
func (s *Schema) Default(axisName string) (string, bool) {
	i, ok := s.index[axisName]
	if !ok {
		return "", false
	}
	return s.axes[i].def, true
}

// Fragment returns the classes contributed by one option of an axis.
func (s *Schema) Fragment(axisName, option string) (string, bool) {
	i, ok := s.index[axisName]
	if !ok {
		return "", false
	}
	classes, ok := s.axes[i].fragments[option]
	return classes, ok
}

// Resolve resolves the selection with the process-wide default Resolver.
func (s *Schema) Resolve(sel Selection, overrides ...string) (string, error) {
	return Default().Resolve(s, sel, overrides...)
}

// effective validates sel and returns the chosen option key per axis, in axis order.
func (s *Schema) effective(sel Selection) ([]string, error) {
	var unknown []string
	for key := range sel {
		if _, ok := s.index[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownAxisError{Schema: s.name, Axis: unknown[0], Known: s.Axes()}
	}

	chosen := make([]string, len(s.axes))
	for i, a := range s.axes {
		key := sel[a.name]
		if key == "" {
			key = a.def
		}
		if _, ok := a.fragments[key]; !ok {
			return nil, &UnknownOptionError{
				Schema: s.name,
				Axis:   a.name,
				Option: key,
				Known:  append([]string(nil), a.keys...),
			}
		}
		chosen[i] = key
	}
	return chosen, nil
}
