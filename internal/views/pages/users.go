package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"dashkit/internal/views/components"
	"dashkit/internal/views/markup"
	"dashkit/models"
)

// UsersTableID is the element replaced by HTMX search requests.
const UsersTableID = "users-table"

// UsersData feeds the users list view.
type UsersData struct {
	Users   []models.User
	Filters UserFilters
}

// Users renders the searchable users list.
func Users(data UsersData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Open("div", markup.Class("flex items-center justify-between gap-4"))
		m.Open("form", markup.A("method", "get"), markup.A("action", "/users"), markup.Class("w-full max-w-md"),
			markup.A("hx-get", "/users"), markup.A("hx-target", "#"+UsersTableID), markup.A("hx-swap", "outerHTML"),
			markup.A("hx-trigger", "input changed delay:300ms from:input, submit"))
		m.Render(components.Input(components.InputProps{
			Name:        "q",
			Type:        "search",
			Value:       data.Filters.Query,
			Placeholder: "Search by name or email",
			LeftIcon:    components.Icon("search", "h-4 w-4"),
		}))
		m.Close("form")
		m.Render(components.Button(components.ButtonProps{Href: "/users/new", Label: "Add user"}))
		m.Close("div")
		m.Render(components.Card(components.CardProps{Padding: "none", Class: "overflow-hidden"}, UsersTable(data.Users, true)))
		return m.Err()
	})
}

// UsersTable renders the users table. withActions adds edit and delete controls.
func UsersTable(users []models.User, withActions bool) templ.Component {
	columns := []components.Column{{Header: "User"}, {Header: "Role"}, {Header: "Status"}, {Header: "Created"}}
	if withActions {
		columns = append(columns, components.Column{Header: "Actions", Class: "text-right"})
	}
	rows := make([]components.Row, 0, len(users))
	for _, u := range users {
		cells := []templ.Component{
			userCell(u),
			markup.Text(models.LabelFor(models.Roles(), u.Role)),
			statusBadge(u.Status),
			markup.Text(FormatDate(u.CreatedAt)),
		}
		if withActions {
			cells = append(cells, userActions(u))
		}
		rows = append(rows, components.Row{Key: strconv.FormatUint(uint64(u.ID), 10), Cells: cells})
	}
	return components.Table(components.TableProps{
		ID:      UsersTableID,
		Columns: columns,
		Rows:    rows,
		Empty:   "No users found.",
	})
}

func userCell(u models.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Element("div", u.Name, markup.Class("font-medium text-text-primary"))
		m.Element("div", u.Email, markup.Class("text-text-muted"))
		return m.Err()
	})
}

func statusBadge(status string) templ.Component {
	tone := "warning"
	if status == models.StatusActive {
		tone = "success"
	}
	return components.Badge(components.BadgeProps{Variant: tone, Dot: true, Label: models.LabelFor(models.Statuses(), status)})
}

func userActions(u models.User) templ.Component {
	id := strconv.FormatUint(uint64(u.ID), 10)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Open("div", markup.Class("flex justify-end gap-2"))
		m.Render(components.Button(components.ButtonProps{Variant: "ghost", Size: "sm", Href: "/users/" + id + "/edit", Label: "Edit"}))
		m.Open("form", markup.A("method", "post"), markup.A("action", "/users/"+id+"/delete"),
			markup.A("hx-confirm", "Delete "+u.Name+"?"))
		m.Render(components.Button(components.ButtonProps{Variant: "ghost", Size: "sm", Type: "submit", Label: "Delete", Class: "text-error-600"}))
		m.Close("form")
		m.Close("div")
		return m.Err()
	})
}
