package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/navigation"
	"dashkit/internal/views/markup"
)

// Breadcrumb renders the trail for the given crumbs. The last crumb is the current page
// and is not linked.
func Breadcrumb(crumbs []navigation.Crumb) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Open("nav", markup.Class("flex"), markup.A("aria-label", "Breadcrumb"))
		m.Open("ol", markup.Class("flex items-center space-x-2"))
		for i, crumb := range crumbs {
			m.Open("li", markup.Class("flex items-center"))
			if i == 0 {
				m.Raw(icon(navigation.IconHome, "h-4 w-4 text-text-muted mr-2"))
			} else {
				m.Raw(icon("chevron-right", "h-4 w-4 text-text-muted mx-2"))
			}
			if i == len(crumbs)-1 {
				m.Element("span", crumb.Name, markup.Class("text-sm font-medium text-text-muted"), markup.A("aria-current", "page"))
			} else {
				m.Element("a", crumb.Name, markup.Href(crumb.Href), markup.Class("text-sm font-medium text-text-secondary hover:text-primary-600"))
			}
			m.Close("li")
		}
		m.Close("ol")
		m.Close("nav")
		return m.Err()
	})
}
