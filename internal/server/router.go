package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dashkit/internal/handlers"
	applog "dashkit/internal/log"
)

func newRouter(metrics *Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	applog.Debug(context.Background(), "registering http routes")

	r.Get("/healthz", handlers.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/assets/tokens.css", handlers.TokensCSS)
	r.HandleFunc("/login", handlers.Login)
	r.HandleFunc("/logout", handlers.Logout)

	r.Group(func(r chi.Router) {
		r.Use(handlers.RequireAuthentication)

		r.Get("/", handlers.Home)
		r.Get("/dashboard", handlers.Dashboard)
		r.Get("/users", handlers.Users)
		r.HandleFunc("/users/new", handlers.UserNew)
		r.HandleFunc("/users/{id}/edit", handlers.UserEdit)
		r.Post("/users/{id}/delete", handlers.UserDelete)
		r.Get("/settings", handlers.Settings)
		r.HandleFunc("/settings/profile", handlers.SettingsProfile)
		r.HandleFunc("/settings/account", handlers.SettingsAccount)
		r.Get("/api/schemas", handlers.APISchemas)
		r.Post("/api/resolve", handlers.APIResolve)
	})

	applog.Debug(context.Background(), "http routes registered")
	return r
}
