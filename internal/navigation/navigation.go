// Package navigation describes the admin menu, the route table and the breadcrumb trail.
package navigation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Icon names understood by the sidebar renderer.
const (
	IconHome     = "home"
	IconUsers    = "users"
	IconSettings = "settings"
)

// Item is one entry of the sidebar menu.
type Item struct {
	Name     string
	Href     string
	Icon     string
	Badge    string
	Children []Item
}

var menu = []Item{
	{Name: "Dashboard", Href: "/dashboard", Icon: IconHome},
	{
		Name: "Users",
		Href: "/users",
		Icon: IconUsers,
		Children: []Item{
			{Name: "All Users", Href: "/users", Icon: IconUsers},
			{Name: "Add User", Href: "/users/new", Icon: IconUsers},
		},
	},
	{
		Name: "Settings",
		Href: "/settings",
		Icon: IconSettings,
		Children: []Item{
			{Name: "Profile", Href: "/settings/profile", Icon: IconSettings},
			{Name: "Account", Href: "/settings/account", Icon: IconSettings},
		},
	},
}

// Menu returns a copy of the sidebar tree. badges maps an item href to the badge
// shown next to the top-level entry.
func Menu(badges map[string]string) []Item {
	items := make([]Item, len(menu))
	for i, item := range menu {
		item.Badge = badges[item.Href]
		if len(item.Children) > 0 {
			item.Children = append([]Item(nil), item.Children...)
		}
		items[i] = item
	}
	return items
}

// IsActive reports whether item should be highlighted for path: either the path is the
// item itself, lives below it, or one of its children is active.
func IsActive(item Item, path string) bool {
	path = clean(path)
	href := clean(item.Href)
	if path == href || strings.HasPrefix(path, href+"/") {
		return true
	}
	for _, child := range item.Children {
		if IsActive(child, path) {
			return true
		}
	}
	return false
}

// Crumb is one breadcrumb link.
type Crumb struct {
	Name string
	Href string
}

// Breadcrumbs starts at Home and appends one crumb per path segment, each linking to the
// cumulative path. Segment names are capitalised and dashes become spaces.
func Breadcrumbs(path string) []Crumb {
	crumbs := []Crumb{{Name: "Home", Href: "/dashboard"}}
	current := ""
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		current += "/" + segment
		crumbs = append(crumbs, Crumb{Name: segmentName(segment), Href: current})
	}
	return crumbs
}

func segmentName(segment string) string {
	name := strings.ReplaceAll(segment, "-", " ")
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + name[size:]
}

func clean(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
