package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"dashkit/internal/views/components"
	"dashkit/internal/views/markup"
	"dashkit/models"
)

// UserForm feeds the create and edit user views. Errors is keyed by form field name.
type UserForm struct {
	User   models.User
	Errors map[string]string
	IsNew  bool
}

// Action returns the URL the form posts to.
func (f UserForm) Action() string {
	if f.IsNew {
		return "/users/new"
	}
	return "/users/" + strconv.FormatUint(uint64(f.User.ID), 10) + "/edit"
}

func choiceOptions(choices []models.Choice) []components.SelectOption {
	return lo.Map(choices, func(c models.Choice, _ int) components.SelectOption {
		return components.SelectOption{Value: c.Value, Label: c.Label}
	})
}

// UserFormView renders the user editor.
func UserFormView(f UserForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title, submit := "Edit user", "Save changes"
		if f.IsNew {
			title, submit = "New user", "Create user"
		}
		role := f.User.Role
		if role == "" {
			role = models.DefaultRole
		}
		status := f.User.Status
		if status == "" {
			status = models.StatusActive
		}

		fields := []templ.Component{
			components.Input(components.InputProps{Name: "name", Label: "Full name", Value: f.User.Name, Required: true, ErrorText: f.Errors["name"]}),
			components.Input(components.InputProps{Name: "email", Type: "email", Label: "Email", Value: f.User.Email, Required: true, ErrorText: f.Errors["email"]}),
		}
		if f.IsNew {
			fields = append(fields, components.Input(components.InputProps{
				Name: "password", Type: "password", Label: "Password", Required: true,
				HelperText: "At least 8 characters.", ErrorText: f.Errors["password"],
			}))
		}
		fields = append(fields,
			components.Select(components.SelectProps{Name: "role", Label: "Role", Value: role, Options: choiceOptions(models.Roles()), ErrorText: f.Errors["role"]}),
			components.Select(components.SelectProps{Name: "status", Label: "Status", Value: status, Options: choiceOptions(models.Statuses()), ErrorText: f.Errors["status"]}),
			components.Input(components.InputProps{Name: "phone", Type: "tel", Label: "Phone", Value: f.User.Phone, ErrorText: f.Errors["phone"]}),
			components.Input(components.InputProps{Name: "location", Label: "Location", Value: f.User.Location}),
		)

		m := markup.New(ctx, w)
		m.Open("form", markup.A("method", "post"), markup.A("action", f.Action()), markup.A("id", "user-form"))
		m.Render(components.Card(components.CardProps{},
			components.CardHeader(components.CardHeaderProps{Title: title}),
			components.CardContent("grid grid-cols-1 gap-4 md:grid-cols-2", fields...),
			components.CardFooter("flex justify-end gap-2",
				components.Button(components.ButtonProps{Variant: "ghost", Href: "/users", Label: "Cancel"}),
				components.Button(components.ButtonProps{Type: "submit", Label: submit}),
			),
		))
		m.Close("form")
		return m.Err()
	})
}
