package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/variant"
	"dashkit/internal/views/markup"
)

// ButtonSchema styles Button.
var ButtonSchema = variant.Must(variant.New("button",
	"btn inline-flex items-center justify-center rounded-md font-medium transition-all duration-200 focus-ring disabled:opacity-50 disabled:cursor-not-allowed",
	variant.Axis{
		Name:    "variant",
		Default: "primary",
		Options: []variant.Option{
			{Key: "primary", Classes: "bg-primary-500 text-white hover:bg-primary-600 active:bg-primary-700 shadow-button hover:shadow-button-hover"},
			{Key: "secondary", Classes: "bg-secondary-100 text-secondary-900 hover:bg-secondary-200 active:bg-secondary-300 border border-secondary-300"},
			{Key: "outline", Classes: "border border-primary-500 text-primary-500 hover:bg-primary-50 active:bg-primary-100"},
			{Key: "ghost", Classes: "text-secondary-700 hover:bg-secondary-100 active:bg-secondary-200"},
			{Key: "success", Classes: "bg-success-500 text-white hover:bg-success-600 active:bg-success-700"},
			{Key: "warning", Classes: "bg-warning-500 text-white hover:bg-warning-600 active:bg-warning-700"},
			{Key: "error", Classes: "bg-error-500 text-white hover:bg-error-600 active:bg-error-700"},
			{Key: "link", Classes: "text-primary-500 hover:text-primary-600 underline-offset-4 hover:underline"},
		},
	},
	variant.Axis{
		Name:    "size",
		Default: "md",
		Options: []variant.Option{
			{Key: "xs", Classes: "px-2 py-1 text-xs"},
			{Key: "sm", Classes: "px-3 py-1.5 text-sm"},
			{Key: "md", Classes: "px-4 py-2 text-sm"},
			{Key: "lg", Classes: "px-6 py-3 text-base"},
			{Key: "xl", Classes: "px-8 py-4 text-lg"},
		},
	},
	variant.BoolAxis("fullWidth", false, "w-full", "w-auto"),
))

// ButtonProps configures a Button. Empty Variant and Size use the schema defaults.
type ButtonProps struct {
	Variant   string
	Size      string
	FullWidth bool
	Loading   bool
	Disabled  bool
	// Type defaults to "button". Ignored when Href is set.
	Type string
	// Href renders an anchor styled as a button.
	Href      string
	Label     string
	LeftIcon  templ.Component
	RightIcon templ.Component
	Class     string
	Attrs     templ.Attributes
}

// Button renders a button, or an anchor when Href is set, followed by Label and children.
// A loading button is disabled and shows a spinner in place of its icons.
func Button(p ButtonProps, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		classes, err := ButtonSchema.Resolve(variant.Selection{
			"variant":   p.Variant,
			"size":      p.Size,
			"fullWidth": variant.Flag(p.FullWidth),
		}, p.Class)
		if err != nil {
			return err
		}

		disabled := p.Disabled || p.Loading
		tag := "button"
		attrs := []markup.Attr{markup.Class(classes)}
		if p.Href != "" && !disabled {
			tag = "a"
			attrs = append(attrs, markup.Href(p.Href))
		} else {
			kind := p.Type
			if kind == "" {
				kind = "button"
			}
			attrs = append(attrs, markup.A("type", kind), markup.Bool("disabled", disabled))
		}
		if p.Loading {
			attrs = append(attrs, markup.A("aria-busy", "true"))
		}
		attrs = append(attrs, markup.Extra(p.Attrs)...)

		m := markup.New(ctx, w)
		m.Open(tag, attrs...)
		if p.Loading {
			m.Raw(spinnerSVG)
		} else if p.LeftIcon != nil {
			m.Open("span", markup.Class("mr-2"))
			m.Render(p.LeftIcon)
			m.Close("span")
		}
		m.Text(p.Label)
		m.Render(children...)
		if !p.Loading && p.RightIcon != nil {
			m.Open("span", markup.Class("ml-2"))
			m.Render(p.RightIcon)
			m.Close("span")
		}
		m.Close(tag)
		return m.Err()
	})
}

const spinnerSVG = `<svg class="animate-spin -ml-1 mr-2 h-4 w-4" xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24">` +
	`<circle class="opacity-25" cx="12" cy="12" r="10" stroke="currentColor" stroke-width="4"></circle>` +
	`<path class="opacity-75" fill="currentColor" d="M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z"></path></svg>`
