package pages

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"dashkit/models"
)

// UserFilters capture the client-driven state for the users list.
type UserFilters struct {
	Query string
}

// UserFiltersFromRequest extracts filter inputs from an HTTP request.
func UserFiltersFromRequest(r *http.Request) UserFilters {
	filters := UserFilters{}
	if err := r.ParseForm(); err != nil {
		return filters
	}
	filters.Query = strings.TrimSpace(r.FormValue("q"))
	return filters
}

// FilterUsers keeps users whose name or email contains the query, ignoring case.
func FilterUsers(all []models.User, filters UserFilters) []models.User {
	if filters.Query == "" {
		return all
	}
	query := strings.ToLower(filters.Query)
	return lo.Filter(all, func(u models.User, _ int) bool {
		return containsFold(u.Name, query) || containsFold(u.Email, query)
	})
}

// UserStats summarises the user table for the dashboard.
type UserStats struct {
	Total    int
	Active   int
	Inactive int
	Admins   int
}

// SummarizeUsers counts users by status and role.
func SummarizeUsers(all []models.User) UserStats {
	return UserStats{
		Total:    len(all),
		Active:   lo.CountBy(all, func(u models.User) bool { return u.IsActive() }),
		Inactive: lo.CountBy(all, func(u models.User) bool { return !u.IsActive() }),
		Admins:   lo.CountBy(all, func(u models.User) bool { return u.IsAdmin() }),
	}
}

// NewestUsers returns up to limit users ordered by creation time, newest first.
func NewestUsers(all []models.User, limit int) []models.User {
	sorted := append([]models.User(nil), all...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// ParseUint extracts a uint from the provided string, returning zero on failure.
func ParseUint(value string) uint {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	parsed, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0
	}
	return uint(parsed)
}

// DefaultDash returns a dash when the provided value is empty or whitespace.
func DefaultDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// FormatDate renders t as a short calendar date, or a dash for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02")
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}
