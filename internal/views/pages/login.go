package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"dashkit/internal/views/components"
	"dashkit/internal/views/layout"
	"dashkit/internal/views/markup"
	"dashkit/internal/views/theme"
)

// Login renders the standalone sign-in document. message is shown as an error banner.
func Login(message, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		shell, err := theme.Resolve(theme.DefaultKey, false)
		if err != nil {
			return err
		}
		form := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			m := markup.New(ctx, w)
			m.Open("main", markup.Class("flex min-h-screen items-center justify-center p-6"))
			m.Open("form", markup.A("method", "post"), markup.A("action", "/login"), markup.Class("w-full max-w-sm"))
			m.Render(components.Card(components.CardProps{Variant: "elevated"},
				components.CardHeader(components.CardHeaderProps{Title: "Sign in", Subtitle: "Use your administrator account."}),
				components.CardContent("space-y-4",
					components.Alert(components.AlertProps{Tone: "error", Message: message}),
					components.Input(components.InputProps{Name: "email", Type: "email", Label: "Email", Value: email, Required: true,
						Attrs: templ.Attributes{"autocomplete": "username", "autofocus": true}}),
					components.Input(components.InputProps{Name: "password", Type: "password", Label: "Password", Required: true,
						Attrs: templ.Attributes{"autocomplete": "current-password"}}),
				),
				components.CardFooter("",
					components.Button(components.ButtonProps{Type: "submit", FullWidth: true, Label: "Sign in"}),
				),
			))
			m.Close("form")
			m.Close("main")
			return m.Err()
		})
		return layout.Document("Sign in · dashkit", shell.BodyClass, form).Render(ctx, w)
	})
}
