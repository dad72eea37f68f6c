package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/variant"
	"dashkit/internal/views/markup"
)

// AlertSchema styles Alert.
var AlertSchema = variant.Must(variant.New("alert",
	"flex items-start gap-3 rounded-card border px-4 py-3 text-body-sm",
	variant.Axis{
		Name:    "tone",
		Default: "info",
		Options: []variant.Option{
			{Key: "info", Classes: "bg-info-50 border-info-200 text-info-800"},
			{Key: "success", Classes: "bg-success-50 border-success-200 text-success-800"},
			{Key: "warning", Classes: "bg-warning-50 border-warning-200 text-warning-800"},
			{Key: "error", Classes: "bg-error-50 border-error-200 text-error-800"},
		},
	},
))

// AlertProps configures an Alert banner.
type AlertProps struct {
	Tone    string
	Title   string
	Message string
	Class   string
}

// Alert renders a flash banner. It renders nothing when Title and Message are empty.
func Alert(p AlertProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p.Title == "" && p.Message == "" {
			return nil
		}
		classes, err := AlertSchema.Resolve(variant.Selection{"tone": p.Tone}, p.Class)
		if err != nil {
			return err
		}
		role := "status"
		if p.Tone == "error" || p.Tone == "warning" {
			role = "alert"
		}
		m := markup.New(ctx, w)
		m.Open("div", markup.Class(classes), markup.A("role", role))
		m.Open("div")
		if p.Title != "" {
			m.Element("p", p.Title, markup.Class("font-semibold"))
		}
		if p.Message != "" {
			m.Element("p", p.Message)
		}
		m.Close("div")
		m.Close("div")
		return m.Err()
	})
}
