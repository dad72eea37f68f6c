package theme

import (
	"strings"

	"dashkit/internal/variant"
)

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string
	Label string
}

// Shell contains resolved class strings for the application shell.
type Shell struct {
	Key          string
	Collapsed    bool
	BodyClass    string
	SidebarClass string
	TopbarClass  string
	ContentClass string
	MutedClass   string
}

const (
	// DefaultKey defines the fallback theme when the request does not pick one.
	DefaultKey = "light"
	// DarkKey selects the dark shell.
	DarkKey = "dark"
)

func themeAxis(light, dark string) variant.Axis {
	return variant.Axis{
		Name:    "theme",
		Default: DefaultKey,
		Options: []variant.Option{
			{Key: DefaultKey, Classes: light},
			{Key: DarkKey, Classes: dark},
		},
	}
}

var (
	BodySchema = variant.Must(variant.New("shell-body",
		"admin-layout min-h-screen font-sans antialiased",
		themeAxis("bg-background-secondary text-text-primary", "dark bg-neutral-900 text-neutral-100"),
	))

	SidebarSchema = variant.Must(variant.New("shell-sidebar",
		"admin-sidebar flex flex-col min-h-screen overflow-y-auto",
		themeAxis("", "bg-neutral-900 border-r border-neutral-800"),
		variant.Axis{
			Name:    "sidebar",
			Default: "open",
			Options: []variant.Option{
				{Key: "open", Classes: "w-sidebar"},
				{Key: "collapsed", Classes: "admin-sidebar-collapsed w-sidebar-collapsed"},
			},
		},
	))

	TopbarSchema = variant.Must(variant.New("shell-topbar",
		"admin-topbar flex items-center justify-between px-6",
		themeAxis("", "bg-neutral-800 text-neutral-100 border-neutral-700"),
	))

	ContentSchema = variant.Must(variant.New("shell-content",
		"admin-content flex-1 space-y-6",
		themeAxis("", "bg-neutral-900"),
	))

	MutedSchema = variant.Must(variant.New("shell-muted",
		"text-body-sm",
		themeAxis("text-text-muted", "text-neutral-400"),
	))
)

var options = []Option{
	{Value: DefaultKey, Label: "Light"},
	{Value: DarkKey, Label: "Dark"},
}

// Normalize lower-cases key and falls back to DefaultKey for unknown themes.
func Normalize(key string) string {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for _, opt := range options {
		if opt.Value == normalized {
			return normalized
		}
	}
	return DefaultKey
}

// Resolve returns the shell classes for the theme key and sidebar state.
func Resolve(key string, collapsed bool) (Shell, error) {
	key = Normalize(key)
	sidebar := "open"
	if collapsed {
		sidebar = "collapsed"
	}

	shell := Shell{Key: key, Collapsed: collapsed}
	slots := []struct {
		schema *variant.Schema
		sel    variant.Selection
		dst    *string
	}{
		{BodySchema, variant.Selection{"theme": key}, &shell.BodyClass},
		{SidebarSchema, variant.Selection{"theme": key, "sidebar": sidebar}, &shell.SidebarClass},
		{TopbarSchema, variant.Selection{"theme": key}, &shell.TopbarClass},
		{ContentSchema, variant.Selection{"theme": key}, &shell.ContentClass},
		{MutedSchema, variant.Selection{"theme": key}, &shell.MutedClass},
	}
	for _, slot := range slots {
		classes, err := slot.schema.Resolve(slot.sel)
		if err != nil {
			return Shell{}, err
		}
		*slot.dst = classes
	}
	return shell, nil
}

// Schemas lists the shell schemas for registration.
func Schemas() []*variant.Schema {
	return []*variant.Schema{BodySchema, SidebarSchema, TopbarSchema, ContentSchema, MutedSchema}
}

// Options exposes the available theme selections for rendering in a form control.
func Options() []Option {
	return options
}
