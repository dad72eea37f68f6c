package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/navigation"
	"dashkit/internal/views/components"
	"dashkit/internal/views/markup"
	"dashkit/internal/views/theme"
)

// Props describes the chrome around a page.
type Props struct {
	Title     string
	Path      string
	Theme     string
	Collapsed bool
	UserName  string
	// Badges maps a menu href to the badge shown beside it.
	Badges map[string]string
	Flash  components.AlertProps
}

// Document renders a bare HTML document around content.
func Document(title, bodyClass string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Raw("<!DOCTYPE html>")
		m.Open("html", markup.A("lang", "en"))
		m.Open("head")
		m.Open("meta", markup.A("charset", "utf-8"))
		m.Open("meta", markup.A("name", "viewport"), markup.A("content", "width=device-width, initial-scale=1"))
		m.Element("title", title)
		m.Open("link", markup.A("rel", "stylesheet"), markup.A("href", "/assets/tokens.css"))
		m.Open("script", markup.A("src", "https://unpkg.com/htmx.org@1.9.12"), markup.Bool("defer", true))
		m.Close("script")
		m.Close("head")
		m.Open("body", markup.Class(bodyClass), markup.A("hx-boost", "true"))
		m.Render(content)
		m.Close("body")
		m.Close("html")
		return m.Err()
	})
}

// Page renders the admin shell: sidebar, topbar with breadcrumbs, flash banner and content.
func Page(p Props, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		shell, err := theme.Resolve(p.Theme, p.Collapsed)
		if err != nil {
			return err
		}
		title := p.Title
		if title == "" {
			title = navigation.TitleFor(p.Path, "dashkit")
		}

		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			m := markup.New(ctx, w)
			m.Render(components.Sidebar(components.SidebarProps{
				Items:     navigation.Menu(p.Badges),
				Path:      p.Path,
				Collapsed: p.Collapsed,
				Class:     shell.SidebarClass,
			}))
			m.Open("div", markup.Class("flex min-w-0 flex-col"), markup.A("data-theme", shell.Key))
			m.Open("header", markup.Class(shell.TopbarClass))
			m.Render(components.Breadcrumb(navigation.Breadcrumbs(p.Path)))
			m.Open("div", markup.Class("flex items-center gap-4"))
			m.Render(toggleLinks(p.Path, shell))
			if p.UserName != "" {
				m.Element("span", p.UserName, markup.Class(shell.MutedClass))
			}
			m.Open("form", markup.A("method", "post"), markup.A("action", "/logout"))
			m.Render(components.Button(components.ButtonProps{Variant: "ghost", Size: "sm", Type: "submit", Label: "Sign out"}))
			m.Close("form")
			m.Close("div")
			m.Close("header")
			m.Open("main", markup.Class(shell.ContentClass), markup.A("id", "content"))
			m.Element("h1", title, markup.Class("text-heading-2"))
			m.Render(components.Alert(p.Flash), content)
			m.Close("main")
			m.Close("div")
			return m.Err()
		})

		return Document(title+" · dashkit", shell.BodyClass, body).Render(ctx, w)
	})
}

func toggleLinks(path string, shell theme.Shell) templ.Component {
	nextSidebar := "collapsed"
	if shell.Collapsed {
		nextSidebar = "open"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Element("a", "Sidebar", markup.Href(ToggleURL(path, shell.Key, nextSidebar)), markup.Class(shell.MutedClass), markup.A("data-toggle", "sidebar"))
		for _, opt := range theme.Options() {
			if opt.Value == shell.Key {
				continue
			}
			m.Element("a", opt.Label, markup.Href(ToggleURL(path, opt.Value, sidebarKey(shell.Collapsed))), markup.Class(shell.MutedClass), markup.A("data-toggle", "theme"))
		}
		return m.Err()
	})
}

func sidebarKey(collapsed bool) string {
	if collapsed {
		return "collapsed"
	}
	return "open"
}

// ToggleURL builds a link to path with the given theme and sidebar state.
func ToggleURL(path, themeKey, sidebar string) string {
	return path + "?theme=" + theme.Normalize(themeKey) + "&sidebar=" + sidebar
}
