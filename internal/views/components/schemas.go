// Package components holds the dashkit UI primitives. Each primitive resolves its
// classes through a variant schema before writing any markup.
package components

import (
	"sync"

	"dashkit/internal/variant"
	"dashkit/internal/views/theme"
)

var schemas = sync.OnceValue(func() *variant.Registry {
	all := append([]*variant.Schema{
		ButtonSchema,
		InputSchema,
		CardSchema,
		BadgeSchema,
		BadgeDotSchema,
		TrendSchema,
		AlertSchema,
		TableCellSchema,
		NavLinkSchema,
	}, theme.Schemas()...)
	reg, err := variant.NewRegistry(all...)
	if err != nil {
		panic(err)
	}
	return reg
})

// Schemas returns the registry of every schema the primitives and the shell use.
func Schemas() *variant.Registry {
	return schemas()
}
