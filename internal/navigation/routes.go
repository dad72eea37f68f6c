package navigation

import "strings"

// Route describes a page of the admin panel.
type Route struct {
	Pattern      string
	Title        string
	RequiresAuth bool
}

// Routes lists the pages served by the admin panel. Patterns use {name} for a single
// path parameter.
var Routes = []Route{
	{Pattern: "/login", Title: "Sign in"},
	{Pattern: "/dashboard", Title: "Dashboard", RequiresAuth: true},
	{Pattern: "/users", Title: "Users", RequiresAuth: true},
	{Pattern: "/users/new", Title: "Create User", RequiresAuth: true},
	{Pattern: "/users/{id}/edit", Title: "Edit User", RequiresAuth: true},
	{Pattern: "/settings/profile", Title: "Profile Settings", RequiresAuth: true},
	{Pattern: "/settings/account", Title: "Account Settings", RequiresAuth: true},
}

// Match returns the route whose pattern matches path. Literal segments win over
// parameters because routes are checked in declaration order.
func Match(path string) (Route, bool) {
	segments := split(clean(path))
	for _, route := range Routes {
		if matches(split(route.Pattern), segments) {
			return route, true
		}
	}
	return Route{}, false
}

// TitleFor returns the page title for path, or fallback when no route matches.
func TitleFor(path, fallback string) string {
	if route, ok := Match(path); ok {
		return route.Title
	}
	return fallback
}

func matches(pattern, segments []string) bool {
	if len(pattern) != len(segments) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			if segments[i] == "" {
				return false
			}
			continue
		}
		if p != segments[i] {
			return false
		}
	}
	return true
}

func split(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}
