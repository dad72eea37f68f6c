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

// DashboardData feeds the dashboard view.
type DashboardData struct {
	Stats  UserStats
	Recent []models.User
}

// Dashboard renders headline user metrics and the newest accounts.
func Dashboard(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		activeShare := "0%"
		if data.Stats.Total > 0 {
			activeShare = strconv.Itoa(data.Stats.Active*100/data.Stats.Total) + "%"
		}
		inactiveTrend := "flat"
		if data.Stats.Inactive > 0 {
			inactiveTrend = "down"
		}

		m := markup.New(ctx, w)
		m.Open("div", markup.Class("grid grid-cols-1 gap-6 md:grid-cols-2 xl:grid-cols-4"), markup.A("id", "stats"))
		m.Render(
			components.StatCard(components.StatCardProps{Title: "Total users", Value: strconv.Itoa(data.Stats.Total)}),
			components.StatCard(components.StatCardProps{Title: "Active", Value: strconv.Itoa(data.Stats.Active), Change: activeShare, Trend: "up", Caption: "of all accounts"}),
			components.StatCard(components.StatCardProps{Title: "Inactive", Value: strconv.Itoa(data.Stats.Inactive), Trend: inactiveTrend}),
			components.StatCard(components.StatCardProps{Title: "Admins", Value: strconv.Itoa(data.Stats.Admins)}),
		)
		m.Close("div")
		m.Render(components.Card(components.CardProps{},
			components.CardHeader(components.CardHeaderProps{
				Title:    "Newest users",
				Subtitle: "Accounts created most recently",
				Action:   components.Button(components.ButtonProps{Variant: "outline", Size: "sm", Href: "/users", Label: "View all"}),
			}),
			components.CardContent("", UsersTable(data.Recent, false)),
		))
		return m.Err()
	})
}
