package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/variant"
	"dashkit/internal/views/markup"
)

var badgeVariants = []string{"primary", "secondary", "success", "warning", "error", "info", "neutral", "outline"}

func badgeVariantAxis(classes func(key string) string) variant.Axis {
	opts := make([]variant.Option, len(badgeVariants))
	for i, key := range badgeVariants {
		opts[i] = variant.Option{Key: key, Classes: classes(key)}
	}
	return variant.Axis{Name: "variant", Default: "primary", Options: opts}
}

var (
	// BadgeSchema styles Badge.
	BadgeSchema = variant.Must(variant.New("badge",
		"inline-flex items-center rounded-badge px-2 py-1 text-label-sm font-medium transition-all duration-200",
		badgeVariantAxis(func(key string) string {
			if key == "outline" {
				return "border border-border-primary text-text-secondary bg-transparent"
			}
			return "bg-" + key + "-100 text-" + key + "-800 border border-" + key + "-200"
		}),
		variant.Axis{
			Name:    "size",
			Default: "md",
			Options: []variant.Option{
				{Key: "sm", Classes: "px-1.5 py-0.5 text-xs"},
				{Key: "md", Classes: "px-2 py-1 text-xs"},
				{Key: "lg", Classes: "px-3 py-1.5 text-sm"},
			},
		},
		variant.BoolAxis("dot", false, "pl-1.5", ""),
	))

	// BadgeDotSchema colours the status dot of a Badge to match its variant.
	BadgeDotSchema = variant.Must(variant.New("badge-dot",
		"inline-block w-1.5 h-1.5 rounded-full mr-1.5",
		badgeVariantAxis(func(key string) string {
			if key == "outline" {
				return "bg-text-secondary"
			}
			return "bg-" + key + "-500"
		}),
	))
)

// BadgeProps configures a Badge.
type BadgeProps struct {
	Variant string
	Size    string
	Dot     bool
	Label   string
	// Icon is shown before the label unless Dot is set.
	Icon templ.Component
	// Removable appends a remove button carrying RemoveAttrs, for example
	// hx-delete and hx-target.
	Removable   bool
	RemoveAttrs templ.Attributes
	Class       string
	Attrs       templ.Attributes
}

const badgeRemoveClass = "ml-1 inline-flex items-center justify-center w-3 h-3 rounded-full hover:bg-black/10 focus:outline-none focus:bg-black/10"

// Badge renders a small status label.
func Badge(p BadgeProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		classes, err := BadgeSchema.Resolve(variant.Selection{
			"variant": p.Variant,
			"size":    p.Size,
			"dot":     variant.Flag(p.Dot),
		}, p.Class)
		if err != nil {
			return err
		}
		var dotClasses string
		if p.Dot {
			if dotClasses, err = BadgeDotSchema.Resolve(variant.Selection{"variant": p.Variant}); err != nil {
				return err
			}
		}

		m := markup.New(ctx, w)
		m.Open("span", append([]markup.Attr{markup.Class(classes)}, markup.Extra(p.Attrs)...)...)
		if p.Dot {
			m.Open("span", markup.Class(dotClasses), markup.A("aria-hidden", "true"))
			m.Close("span")
		} else if p.Icon != nil {
			m.Open("span", markup.Class("mr-1"))
			m.Render(p.Icon)
			m.Close("span")
		}
		m.Text(p.Label)
		m.Render(children...)
		if p.Removable {
			attrs := []markup.Attr{
				markup.A("type", "button"),
				markup.Class(badgeRemoveClass),
				markup.A("aria-label", "Remove badge"),
				markup.A("title", "Remove badge"),
			}
			m.Open("button", append(attrs, markup.Extra(p.RemoveAttrs)...)...)
			m.Render(Icon("x-mark", "w-2 h-2"))
			m.Close("button")
		}
		m.Close("span")
		return m.Err()
	})
}
