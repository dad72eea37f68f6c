// Package tokens holds the dashkit design tokens and renders them as CSS.
package tokens

// Token is one named design value.
type Token struct {
	Name  string
	Value string
}

// Scale is an ordered list of tokens.
type Scale []Token

// Lookup returns the value stored under name.
func (s Scale) Lookup(name string) (string, bool) {
	for _, t := range s {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// Names returns the token names in declaration order.
func (s Scale) Names() []string {
	names := make([]string, len(s))
	for i, t := range s {
		names[i] = t.Name
	}
	return names
}

func mustLookup(s Scale, name string) string {
	v, ok := s.Lookup(name)
	if !ok {
		panic("tokens: unknown token " + name)
	}
	return v
}
