package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/views/components"
	"dashkit/internal/views/markup"
	"dashkit/models"
)

// ProfileForm feeds the profile settings view.
type ProfileForm struct {
	User   models.User
	Errors map[string]string
}

// Profile renders the profile settings form.
func Profile(f ProfileForm) templ.Component {
	return settingsForm("/settings/profile", "Profile", "Update how other administrators see you.", "Save profile",
		components.Input(components.InputProps{Name: "name", Label: "Full name", Value: f.User.Name, Required: true, ErrorText: f.Errors["name"]}),
		components.Input(components.InputProps{Name: "email", Type: "email", Label: "Email", Value: f.User.Email, Required: true, ErrorText: f.Errors["email"]}),
		components.Input(components.InputProps{Name: "phone", Type: "tel", Label: "Phone", Value: f.User.Phone, ErrorText: f.Errors["phone"]}),
		components.Input(components.InputProps{Name: "location", Label: "Location", Value: f.User.Location}),
		components.Textarea(components.TextareaProps{Name: "bio", Label: "Bio", Value: f.User.Bio, ErrorText: f.Errors["bio"]}),
	)
}

// AccountForm feeds the account settings view. Password values are never echoed back.
type AccountForm struct {
	Errors map[string]string
}

// Account renders the password change form.
func Account(f AccountForm) templ.Component {
	return settingsForm("/settings/account", "Account", "Change the password used to sign in.", "Update password",
		components.Input(components.InputProps{Name: "current_password", Type: "password", Label: "Current password", Required: true, ErrorText: f.Errors["current_password"]}),
		components.Input(components.InputProps{Name: "new_password", Type: "password", Label: "New password", Required: true, HelperText: "At least 8 characters.", ErrorText: f.Errors["new_password"]}),
		components.Input(components.InputProps{Name: "confirm_password", Type: "password", Label: "Confirm new password", Required: true, ErrorText: f.Errors["confirm_password"]}),
	)
}

func settingsForm(action, title, subtitle, submit string, fields ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)
		m.Open("form", markup.A("method", "post"), markup.A("action", action), markup.Class("max-w-2xl"))
		m.Render(components.Card(components.CardProps{},
			components.CardHeader(components.CardHeaderProps{Title: title, Subtitle: subtitle}),
			components.CardContent("space-y-4", fields...),
			components.CardFooter("flex justify-end",
				components.Button(components.ButtonProps{Type: "submit", Label: submit}),
			),
		))
		m.Close("form")
		return m.Err()
	})
}
