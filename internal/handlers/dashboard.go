package handlers

import (
	"net/http"

	applog "dashkit/internal/log"
	"dashkit/internal/views/pages"
)

const recentUsersLimit = 5

// Dashboard renders user metrics and the newest accounts.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	users, err := listUsers(r)
	if err != nil {
		applog.Error(r.Context(), "failed to load dashboard users", "error", err)
		http.Error(w, "unable to load dashboard", http.StatusInternalServerError)
		return
	}

	data := pages.DashboardData{
		Stats:  pages.SummarizeUsers(users),
		Recent: pages.NewestUsers(users, recentUsersLimit),
	}
	applog.Debug(r.Context(), "rendering dashboard", "users", data.Stats.Total)
	renderPage(w, r, "Dashboard", pages.Dashboard(data))
}

// Home sends visitors to the dashboard.
func Home(w http.ResponseWriter, r *http.Request) {
	redirectToApp(w, r)
}
