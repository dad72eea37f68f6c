package handlers

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	applog "dashkit/internal/log"
	"dashkit/internal/views/components"
	"dashkit/internal/views/layout"
	"dashkit/internal/views/theme"
	"dashkit/models"
)

const (
	sessionFlashMessageKey = "flash:message"
	sessionFlashToneKey    = "flash:tone"
)

// setFlash queues a banner shown on the next rendered page.
func setFlash(r *http.Request, tone, message string) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionFlashToneKey, tone)
	sessionManager.Put(r.Context(), sessionFlashMessageKey, message)
}

func popFlash(r *http.Request) components.AlertProps {
	if sessionManager == nil {
		return components.AlertProps{}
	}
	return components.AlertProps{
		Tone:    sessionManager.PopString(r.Context(), sessionFlashToneKey),
		Message: sessionManager.PopString(r.Context(), sessionFlashMessageKey),
	}
}

// shellProps reads the shell state for r. The theme and sidebar come from the query
// string and are never stored.
func shellProps(r *http.Request, title string) layout.Props {
	props := layout.Props{
		Title:     title,
		Path:      r.URL.Path,
		Theme:     theme.Normalize(r.URL.Query().Get("theme")),
		Collapsed: r.URL.Query().Get("sidebar") == "collapsed",
		Flash:     popFlash(r),
	}
	if sessionManager != nil {
		props.UserName = sessionManager.GetString(r.Context(), sessionUserNameKey)
	}
	if database != nil {
		var total int64
		if err := database.WithContext(r.Context()).Model(&models.User{}).Count(&total).Error; err != nil {
			applog.Error(r.Context(), "failed to count users for navigation", "error", err)
		} else {
			props.Badges = map[string]string{"/users": strconv.FormatInt(total, 10)}
		}
	}
	return props
}

// renderPage wraps content in the admin shell.
func renderPage(w http.ResponseWriter, r *http.Request, title string, content templ.Component) {
	renderPageStatus(w, r, http.StatusOK, title, content)
}

func renderPageStatus(w http.ResponseWriter, r *http.Request, status int, title string, content templ.Component) {
	renderComponentStatus(w, r, status, layout.Page(shellProps(r, title), content))
}

func renderComponent(w http.ResponseWriter, r *http.Request, component templ.Component) {
	renderComponentStatus(w, r, http.StatusOK, component)
}

func renderComponentStatus(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render component", "error", err, "path", r.URL.Path)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
