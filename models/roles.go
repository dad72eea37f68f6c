package models

import "strings"

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"

	StatusActive   = "active"
	StatusInactive = "inactive"

	// DefaultRole is assigned when a form submits no role.
	DefaultRole = RoleUser
)

// Choice is a value/label pair rendered in a select control.
type Choice struct {
	Value string
	Label string
}

var (
	roles    = []Choice{{RoleUser, "User"}, {RoleModerator, "Moderator"}, {RoleAdmin, "Admin"}}
	statuses = []Choice{{StatusActive, "Active"}, {StatusInactive, "Inactive"}}
)

// Roles lists the assignable roles in display order.
func Roles() []Choice { return append([]Choice(nil), roles...) }

// Statuses lists the account states in display order.
func Statuses() []Choice { return append([]Choice(nil), statuses...) }

// ValidRole reports whether value names a known role.
func ValidRole(value string) bool { return contains(roles, value) }

// ValidStatus reports whether value names a known account status.
func ValidStatus(value string) bool { return contains(statuses, value) }

// NormalizeRole lower-cases and trims value, falling back to DefaultRole when unknown.
func NormalizeRole(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if ValidRole(normalized) {
		return normalized
	}
	return DefaultRole
}

// LabelFor returns the display label of value within choices, or value itself.
func LabelFor(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

func contains(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
