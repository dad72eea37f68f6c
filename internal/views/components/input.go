package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/classmerge"
	"dashkit/internal/variant"
	"dashkit/internal/views/markup"
)

// InputSchema styles the input element of Input.
var InputSchema = variant.Must(variant.New("input",
	"input block w-full rounded-md border bg-background-primary px-3 py-2 text-text-primary placeholder-text-muted transition-all duration-200 focus-ring disabled:opacity-50 disabled:cursor-not-allowed",
	variant.Axis{
		Name:    "variant",
		Default: "default",
		Options: []variant.Option{
			{Key: "default", Classes: "border-border-primary focus:border-primary-500"},
			{Key: "error", Classes: "border-error-500 focus:border-error-500 focus-ring-error"},
			{Key: "success", Classes: "border-success-500 focus:border-success-500 focus-ring-success"},
		},
	},
	variant.Axis{
		Name:    "size",
		Default: "md",
		Options: []variant.Option{
			{Key: "sm", Classes: "px-2 py-1 text-sm"},
			{Key: "md", Classes: "px-3 py-2 text-sm"},
			{Key: "lg", Classes: "px-4 py-3 text-base"},
		},
	},
))

// InputProps configures an Input field with its label and help text.
type InputProps struct {
	ID          string
	Name        string
	Type        string
	Value       string
	Placeholder string
	Variant     string
	Size        string
	Label       string
	HelperText  string
	// ErrorText replaces HelperText and forces the error variant.
	ErrorText string
	LeftIcon  templ.Component
	RightIcon templ.Component
	// Compact sizes the wrapper to its content instead of the full row.
	Compact  bool
	Required bool
	Disabled bool
	Class    string
	Attrs    templ.Attributes
}

// Input renders a labelled form field.
func Input(p InputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hasError := p.Variant == "error" || p.ErrorText != ""
		selected := p.Variant
		if hasError {
			selected = "error"
		}

		var overrides []string
		if p.LeftIcon != nil {
			overrides = append(overrides, "pl-10")
		}
		if p.RightIcon != nil {
			overrides = append(overrides, "pr-10")
		}
		overrides = append(overrides, p.Class)

		classes, err := InputSchema.Resolve(variant.Selection{"variant": selected, "size": p.Size}, overrides...)
		if err != nil {
			return err
		}

		id := p.ID
		if id == "" && p.Name != "" {
			id = "input-" + p.Name
		}
		kind := p.Type
		if kind == "" {
			kind = "text"
		}
		wrapper := classmerge.Merge("space-y-1", "w-full")
		if p.Compact {
			wrapper = classmerge.Merge("space-y-1", "w-auto")
		}
		message, messageClass := p.HelperText, classmerge.Merge("text-label-sm", "text-text-muted")
		if hasError {
			messageClass = classmerge.Merge("text-label-sm", "text-error-500")
			if p.ErrorText != "" {
				message = p.ErrorText
			}
		}

		m := markup.New(ctx, w)
		m.Open("div", markup.Class(wrapper))
		if p.Label != "" {
			m.Element("label", p.Label, markup.Opt("for", id), markup.Class("block text-label-lg text-text-secondary"))
		}
		m.Open("div", markup.Class("relative"))
		if p.LeftIcon != nil {
			m.Open("div", markup.Class("absolute inset-y-0 left-0 pl-3 flex items-center pointer-events-none"))
			m.Open("span", markup.Class("text-text-muted"))
			m.Render(p.LeftIcon)
			m.Close("span")
			m.Close("div")
		}
		attrs := []markup.Attr{
			markup.Opt("id", id),
			markup.Opt("name", p.Name),
			markup.A("type", kind),
			markup.Class(classes),
			markup.Opt("value", p.Value),
			markup.Opt("placeholder", p.Placeholder),
			markup.Bool("required", p.Required),
			markup.Bool("disabled", p.Disabled),
		}
		if hasError {
			attrs = append(attrs, markup.A("aria-invalid", "true"))
		}
		m.Void("input", append(attrs, markup.Extra(p.Attrs)...)...)
		if p.RightIcon != nil {
			m.Open("div", markup.Class("absolute inset-y-0 right-0 pr-3 flex items-center pointer-events-none"))
			m.Open("span", markup.Class("text-text-muted"))
			m.Render(p.RightIcon)
			m.Close("span")
			m.Close("div")
		}
		m.Close("div")
		if message != "" {
			m.Element("p", message, markup.Class(messageClass))
		}
		m.Close("div")
		return m.Err()
	})
}
