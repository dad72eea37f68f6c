// Package classmerge combines utility class lists so that later classes win over
// earlier ones targeting the same CSS property, instead of leaving the outcome to
// stylesheet source order.
package classmerge

import (
	"sort"
	"strings"
)

// DesignTextStyles are the typography token names the dashkit stylesheet exposes as
// text-<name> font-size utilities.
var DesignTextStyles = []string{
	"display-2xl", "display-xl", "display-lg", "display-md", "display-sm",
	"heading-1", "heading-2", "heading-3", "heading-4", "heading-5", "heading-6",
	"body-lg", "body-md", "body-sm",
	"label-lg", "label-md", "label-sm",
	"code-lg", "code-md", "code-sm",
}

var defaultMerger = New(WithFontSizes(DesignTextStyles...))

// Merger classifies classes into conflict groups and resolves conflicts between them.
// A Merger is immutable after New and safe for concurrent use.
type Merger struct {
	fontSizes map[string]struct{}
}

// Option customises a Merger.
type Option func(*Merger)

// WithFontSizes registers extra text-<name> utilities that set the font size rather
// than the text colour.
func WithFontSizes(names ...string) Option {
	return func(m *Merger) {
		for _, name := range names {
			name = strings.TrimPrefix(strings.TrimSpace(name), "text-")
			if name != "" {
				m.fontSizes[name] = struct{}{}
			}
		}
	}
}

// New builds a Merger that knows the standard utility scale plus any registered extras.
func New(opts ...Option) *Merger {
	m := &Merger{fontSizes: set(baseFontSizes...)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Default returns the shared merger preloaded with DesignTextStyles.
func Default() *Merger {
	return defaultMerger
}

// Merge combines the class lists using the default merger.
func Merge(lists ...string) string {
	return defaultMerger.Merge(lists...)
}

type retained struct {
	class    string
	scope    string
	group    string
	position int
	last     int
}

// Merge flattens lists in order and keeps, for every conflict group, only the last class
// seen. Unrecognised classes are kept verbatim with exact duplicates collapsed. Retained
// classes are emitted where they first appeared, except that a class kept alongside a
// wider group it would conflict with stays after it, so merging the result again is a
// no-op.
func (m *Merger) Merge(lists ...string) string {
	var classes []string
	for _, list := range lists {
		classes = append(classes, strings.Fields(list)...)
	}
	if len(classes) == 0 {
		return ""
	}

	firstSeen := make(map[string]int, len(classes))
	for i, class := range classes {
		if _, ok := firstSeen[class]; !ok {
			firstSeen[class] = i
		}
	}

	claimed := make(map[string]struct{}, len(classes))
	kept := make([]retained, 0, len(classes))
	for i := len(classes) - 1; i >= 0; i-- {
		class := classes[i]
		scope, group := m.classify(class)
		if group == "" {
			key := "=" + class
			if _, ok := claimed[key]; ok {
				continue
			}
			claimed[key] = struct{}{}
			kept = append(kept, retained{class: class, position: firstSeen[class]})
			continue
		}

		key := scope + group
		if _, ok := claimed[key]; ok {
			continue
		}
		claimed[key] = struct{}{}
		for _, narrower := range conflictingGroups[group] {
			claimed[scope+narrower] = struct{}{}
		}
		kept = append(kept, retained{class: class, scope: scope, group: group, position: firstSeen[class], last: i})
	}

	for k := range kept {
		if narrowedByKept(kept, kept[k]) {
			kept[k].position = kept[k].last
		}
	}

	sort.SliceStable(kept, func(a, b int) bool {
		return kept[a].position < kept[b].position
	})

	out := make([]string, len(kept))
	for i, r := range kept {
		out[i] = r.class
	}
	return strings.Join(out, " ")
}

// narrowedByKept reports whether a retained class of a wider group in the same scope
// overrides r's group. r only survives such a class by coming after it.
func narrowedByKept(kept []retained, r retained) bool {
	if r.group == "" {
		return false
	}
	for _, w := range kept {
		if w.scope != r.scope || w.group == "" {
			continue
		}
		for _, narrower := range conflictingGroups[w.group] {
			if narrower == r.group {
				return true
			}
		}
	}
	return false
}

// Group reports the conflict group key for a single class, or "" when the class is not
// a recognised utility and forms its own group.
func (m *Merger) Group(class string) string {
	scope, group := m.classify(class)
	if group == "" {
		return ""
	}
	return scope + group
}

// classify splits a class into its modifier scope and utility group.
func (m *Merger) classify(class string) (scope string, group string) {
	modifiers, base := splitModifiers(class)

	important := false
	if strings.HasPrefix(base, "!") {
		important = true
		base = base[1:]
	} else if strings.HasSuffix(base, "!") {
		important = true
		base = strings.TrimSuffix(base, "!")
	}

	group = m.utilityGroup(strings.TrimPrefix(base, "-"))
	if group == "" {
		return "", ""
	}

	if len(modifiers) > 0 {
		sort.Strings(modifiers)
		scope = strings.Join(modifiers, ":") + ":"
	}
	if important {
		scope += "!"
	}
	return scope, group
}

func (m *Merger) utilityGroup(utility string) string {
	if utility == "" {
		return ""
	}
	if isArbitrary(utility) {
		inner := strings.TrimSuffix(strings.TrimPrefix(utility, "["), "]")
		if prop, _, ok := strings.Cut(inner, ":"); ok && prop != "" {
			return "arbitrary:" + prop
		}
		return ""
	}
	if group, ok := standaloneGroups[utility]; ok {
		return group
	}

	parts := strings.Split(utility, "-")
	for i := len(parts); i > 0; i-- {
		prefix := strings.Join(parts[:i], "-")
		classifier, ok := prefixGroups[prefix]
		if !ok {
			continue
		}
		value := strings.Join(parts[i:], "-")
		if prefix == "text" {
			if _, ok := m.fontSizes[stripPostfix(value)]; ok {
				return "font-size"
			}
		}
		return classifier(stripPostfix(value))
	}
	return ""
}

// splitModifiers separates "hover:md:bg-red-500" into its modifiers and base utility.
// Colons inside square brackets belong to arbitrary values.
func splitModifiers(class string) ([]string, string) {
	var modifiers []string
	depth := 0
	start := 0
	for i := 0; i < len(class); i++ {
		switch class[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				modifiers = append(modifiers, class[start:i])
				start = i + 1
			}
		}
	}
	return modifiers, class[start:]
}

// stripPostfix drops an opacity or line-height postfix such as the "/90" in "bg-primary/90".
func stripPostfix(value string) string {
	if isArbitrary(value) {
		return value
	}
	if idx := strings.LastIndex(value, "/"); idx > 0 && !strings.Contains(value[idx:], "]") {
		head := value[:idx]
		// Fractions such as 1/2 are values, not postfixes.
		if isNumeric(head) {
			return value
		}
		return head
	}
	return value
}
