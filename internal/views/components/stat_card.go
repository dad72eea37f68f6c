package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/variant"
	"dashkit/internal/views/markup"
)

// TrendSchema colours the change indicator of a StatCard.
var TrendSchema = variant.Must(variant.New("stat-trend",
	"inline-flex items-center text-label-md",
	variant.Axis{
		Name:    "trend",
		Default: "flat",
		Options: []variant.Option{
			{Key: "up", Classes: "text-success-600"},
			{Key: "down", Classes: "text-error-600"},
			{Key: "flat", Classes: "text-text-muted"},
		},
	},
))

// StatCardProps describes a headline metric.
type StatCardProps struct {
	Title   string
	Value   string
	Change  string
	Trend   string
	Caption string
}

// StatCard renders a metric inside a Card.
func StatCard(p StatCardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		trendClasses, err := TrendSchema.Resolve(variant.Selection{"trend": p.Trend})
		if err != nil {
			return err
		}
		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			m := markup.New(ctx, w)
			m.Element("p", p.Title, markup.Class("text-label-lg text-text-secondary"))
			m.Element("p", p.Value, markup.Class("mt-2 text-heading-2 text-text-primary"), markup.A("data-stat-value", ""))
			if p.Change != "" || p.Caption != "" {
				m.Open("p", markup.Class("mt-1 flex items-center gap-2"))
				if p.Change != "" {
					m.Element("span", p.Change, markup.Class(trendClasses), markup.Opt("data-trend", p.Trend))
				}
				if p.Caption != "" {
					m.Element("span", p.Caption, markup.Class("text-label-sm text-text-muted"))
				}
				m.Close("p")
			}
			return m.Err()
		})
		return Card(CardProps{Padding: "md"}, body).Render(ctx, w)
	})
}
