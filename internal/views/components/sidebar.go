package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/navigation"
	"dashkit/internal/variant"
	"dashkit/internal/views/markup"
)

// NavLinkSchema styles sidebar links.
var NavLinkSchema = variant.Must(variant.New("nav-link",
	"group flex items-center gap-3 rounded-md px-3 py-2 text-label-lg transition-colors duration-150",
	variant.BoolAxis("active", false,
		"bg-primary-600 text-white",
		"text-neutral-300 hover:bg-neutral-800 hover:text-white"),
	variant.Axis{
		Name:    "depth",
		Default: "top",
		Options: []variant.Option{
			{Key: "top", Classes: ""},
			{Key: "child", Classes: "pl-11 py-1.5 text-body-sm"},
		},
	},
))

// SidebarProps configures the admin sidebar.
type SidebarProps struct {
	Items     []navigation.Item
	Path      string
	Collapsed bool
	Class     string
}

type navLink struct {
	item    navigation.Item
	depth   string
	active  bool
	classes string
}

// Sidebar renders the navigation menu. Children of the active entry are expanded;
// labels and children are hidden when Collapsed.
func Sidebar(p SidebarProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var links []navLink
		for _, item := range p.Items {
			active := navigation.IsActive(item, p.Path)
			link, err := resolveNavLink(item, "top", active)
			if err != nil {
				return err
			}
			links = append(links, link)
			if !active || p.Collapsed {
				continue
			}
			for _, child := range item.Children {
				link, err := resolveNavLink(child, "child", child.Href == cleanPath(p.Path) || (child.Href != item.Href && navigation.IsActive(child, p.Path)))
				if err != nil {
					return err
				}
				links = append(links, link)
			}
		}

		m := markup.New(ctx, w)
		m.Open("aside", markup.Class(p.Class), markup.A("data-collapsed", variant.Flag(p.Collapsed)))
		m.Open("div", markup.Class("flex h-topbar items-center px-4 text-heading-5 text-white"))
		if p.Collapsed {
			m.Text("dk")
		} else {
			m.Text("dashkit")
		}
		m.Close("div")
		m.Open("nav", markup.Class("flex-1 space-y-1 px-2 py-4"), markup.A("aria-label", "Main"))
		for _, link := range links {
			state := "inactive"
			if link.active {
				state = "active"
			}
			attrs := []markup.Attr{
				markup.Href(link.item.Href),
				markup.Class(link.classes),
				markup.A("data-state", state),
				markup.A("data-depth", link.depth),
			}
			if link.active {
				attrs = append(attrs, markup.A("aria-current", "page"))
			}
			if p.Collapsed {
				attrs = append(attrs, markup.A("title", link.item.Name))
			}
			m.Open("a", attrs...)
			if link.depth == "top" {
				m.Raw(icon(link.item.Icon, "h-5 w-5 shrink-0"))
			}
			if !p.Collapsed {
				m.Element("span", link.item.Name, markup.Class("flex-1"))
				if link.item.Badge != "" {
					m.Element("span", link.item.Badge, markup.Class("rounded-badge bg-primary-500 px-2 py-0.5 text-label-sm text-white"))
				}
			}
			m.Close("a")
		}
		m.Close("nav")
		m.Close("aside")
		return m.Err()
	})
}

func resolveNavLink(item navigation.Item, depth string, active bool) (navLink, error) {
	classes, err := NavLinkSchema.Resolve(variant.Selection{"active": variant.Flag(active), "depth": depth})
	if err != nil {
		return navLink{}, err
	}
	return navLink{item: item, depth: depth, active: active, classes: classes}, nil
}

func cleanPath(path string) string {
	if len(path) > 1 && path[len(path)-1] == '/' {
		return path[:len(path)-1]
	}
	return path
}
