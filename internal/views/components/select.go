package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/variant"
	"dashkit/internal/views/markup"
)

// SelectOption is one entry of a Select.
type SelectOption struct {
	Value string
	Label string
}

// SelectProps configures a Select. It shares InputSchema with Input.
type SelectProps struct {
	ID        string
	Name      string
	Label     string
	Value     string
	Options   []SelectOption
	ErrorText string
	Size      string
	Disabled  bool
	Class     string
}

// Select renders a labelled drop-down.
func Select(p SelectProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		classes, err := fieldClasses(p.ErrorText, p.Size, "pr-8", p.Class)
		if err != nil {
			return err
		}
		id := fieldID(p.ID, "select-", p.Name)

		m := markup.New(ctx, w)
		m.Open("div", markup.Class("space-y-1 w-full"))
		fieldLabel(m, id, p.Label)
		m.Open("select", markup.Opt("id", id), markup.Opt("name", p.Name), markup.Class(classes),
			markup.Bool("disabled", p.Disabled))
		for _, opt := range p.Options {
			m.Element("option", opt.Label, markup.A("value", opt.Value), markup.Bool("selected", opt.Value == p.Value))
		}
		m.Close("select")
		fieldError(m, p.ErrorText)
		m.Close("div")
		return m.Err()
	})
}

// TextareaProps configures a Textarea.
type TextareaProps struct {
	ID          string
	Name        string
	Label       string
	Value       string
	Placeholder string
	Rows        int
	ErrorText   string
	Class       string
}

// Textarea renders a labelled multi-line field.
func Textarea(p TextareaProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		classes, err := fieldClasses(p.ErrorText, "", "resize-y", p.Class)
		if err != nil {
			return err
		}
		id := fieldID(p.ID, "textarea-", p.Name)
		rows := p.Rows
		if rows <= 0 {
			rows = 4
		}

		m := markup.New(ctx, w)
		m.Open("div", markup.Class("space-y-1 w-full"))
		fieldLabel(m, id, p.Label)
		m.Element("textarea", p.Value, markup.Opt("id", id), markup.Opt("name", p.Name), markup.Class(classes),
			markup.A("rows", itoa(rows)), markup.Opt("placeholder", p.Placeholder))
		fieldError(m, p.ErrorText)
		m.Close("div")
		return m.Err()
	})
}

func fieldClasses(errorText, size string, overrides ...string) (string, error) {
	selected := "default"
	if errorText != "" {
		selected = "error"
	}
	return InputSchema.Resolve(variant.Selection{"variant": selected, "size": size}, overrides...)
}

func fieldID(id, prefix, name string) string {
	if id == "" && name != "" {
		return prefix + name
	}
	return id
}

func fieldLabel(m *markup.Writer, id, label string) {
	if label != "" {
		m.Element("label", label, markup.Opt("for", id), markup.Class("block text-label-lg text-text-secondary"))
	}
}

func fieldError(m *markup.Writer, text string) {
	if text != "" {
		m.Element("p", text, markup.Class("text-label-sm text-error-500"))
	}
}
