package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/classmerge"
	"dashkit/internal/variant"
	"dashkit/internal/views/markup"
)

// CardSchema styles Card.
var CardSchema = variant.Must(variant.New("card",
	"admin-card bg-background-primary border border-border-primary rounded-card shadow-card transition-all duration-200",
	variant.Axis{
		Name:    "variant",
		Default: "default",
		Options: []variant.Option{
			{Key: "default", Classes: "bg-background-primary border-border-primary"},
			{Key: "elevated", Classes: "shadow-md hover:shadow-lg"},
			{Key: "outlined", Classes: "border-2 border-border-secondary shadow-none"},
			{Key: "ghost", Classes: "border-none shadow-none bg-transparent"},
		},
	},
	variant.Axis{
		Name:    "padding",
		Default: "md",
		Options: []variant.Option{
			{Key: "none", Classes: "p-0"},
			{Key: "sm", Classes: "p-4"},
			{Key: "md", Classes: "p-6"},
			{Key: "lg", Classes: "p-8"},
		},
	},
	variant.BoolAxis("hover", false, "admin-card-hover cursor-pointer", ""),
))

// CardProps configures a Card container.
type CardProps struct {
	Variant string
	Padding string
	Hover   bool
	Class   string
	Attrs   templ.Attributes
}

// Card renders a surface wrapping children.
func Card(p CardProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		classes, err := CardSchema.Resolve(variant.Selection{
			"variant": p.Variant,
			"padding": p.Padding,
			"hover":   variant.Flag(p.Hover),
		}, p.Class)
		if err != nil {
			return err
		}
		m := markup.New(ctx, w)
		m.Open("div", append([]markup.Attr{markup.Class(classes)}, markup.Extra(p.Attrs)...)...)
		m.Render(children...)
		m.Close("div")
		return m.Err()
	})
}

// CardHeaderProps configures a CardHeader.
type CardHeaderProps struct {
	Title    string
	Subtitle string
	Action   templ.Component
	Class    string
}

// CardHeader renders the title row of a card with an optional trailing action.
func CardHeader(p CardHeaderProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Open("div", markup.Class(classmerge.Merge("flex items-start justify-between space-y-1.5 pb-4", p.Class)))
		m.Open("div", markup.Class("space-y-1"))
		if p.Title != "" {
			m.Element("h3", p.Title, markup.Class("text-heading-3 text-text-primary font-semibold leading-none tracking-tight"))
		}
		if p.Subtitle != "" {
			m.Element("p", p.Subtitle, markup.Class("text-body-sm text-text-secondary"))
		}
		m.Render(children...)
		m.Close("div")
		if p.Action != nil {
			m.Open("div", markup.Class("flex items-center space-x-2"))
			m.Render(p.Action)
			m.Close("div")
		}
		m.Close("div")
		return m.Err()
	})
}

// CardContent renders the body of a card.
func CardContent(class string, children ...templ.Component) templ.Component {
	return section("space-y-4", class, children)
}

// CardFooter renders the bottom row of a card above a divider.
func CardFooter(class string, children ...templ.Component) templ.Component {
	return section("flex items-center justify-between pt-4 border-t border-border-primary", class, children)
}

func section(base, class string, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Open("div", markup.Class(classmerge.Merge(base, class)))
		m.Render(children...)
		m.Close("div")
		return m.Err()
	})
}
