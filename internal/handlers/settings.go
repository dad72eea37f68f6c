package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	applog "dashkit/internal/log"
	"dashkit/internal/views/pages"
)

// SettingsProfile shows and updates the signed-in user's profile.
func SettingsProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user, err := loadCurrentUser(r)
	if err != nil {
		applog.Error(r.Context(), "unable to load current user for profile", "error", err)
		http.Error(w, "unable to load account", http.StatusUnauthorized)
		return
	}
	if r.Method == http.MethodGet {
		renderPage(w, r, "Profile", pages.Profile(pages.ProfileForm{User: *user}))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	input := profileInput{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Email:    strings.ToLower(strings.TrimSpace(r.PostFormValue("email"))),
		Phone:    strings.TrimSpace(r.PostFormValue("phone")),
		Location: strings.TrimSpace(r.PostFormValue("location")),
		Bio:      strings.TrimSpace(r.PostFormValue("bio")),
	}
	user.Name, user.Email, user.Phone, user.Location, user.Bio = input.Name, input.Email, input.Phone, input.Location, input.Bio

	errs, err := fieldErrors(validate.Struct(input))
	if err != nil {
		applog.Error(r.Context(), "failed to validate profile form", "error", err)
		http.Error(w, "unable to validate form", http.StatusInternalServerError)
		return
	}
	if errs == nil {
		taken, err := emailTaken(r, input.Email, user.ID)
		if err != nil {
			applog.Error(r.Context(), "failed to check email uniqueness", "error", err)
			http.Error(w, "unable to update profile", http.StatusInternalServerError)
			return
		}
		if taken {
			errs = map[string]string{"email": "An account with that email already exists."}
		}
	}
	if len(errs) > 0 {
		renderPageStatus(w, r, http.StatusUnprocessableEntity, "Profile", pages.Profile(pages.ProfileForm{User: *user, Errors: errs}))
		return
	}

	if err := database.WithContext(r.Context()).Save(user).Error; err != nil {
		applog.Error(r.Context(), "failed to save profile", "error", err, "userID", user.ID)
		http.Error(w, "unable to update profile", http.StatusInternalServerError)
		return
	}
	sessionManager.Put(r.Context(), sessionUserNameKey, user.Name)
	sessionManager.Put(r.Context(), sessionUserEmailKey, user.Email)
	setFlash(r, "success", "Profile updated.")
	redirectTo(w, r, "/settings/profile")
}

// SettingsAccount changes the signed-in user's password.
func SettingsAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user, err := loadCurrentUser(r)
	if err != nil {
		applog.Error(r.Context(), "unable to load current user for account", "error", err)
		http.Error(w, "unable to load account", http.StatusUnauthorized)
		return
	}
	if r.Method == http.MethodGet {
		renderPage(w, r, "Account", pages.Account(pages.AccountForm{}))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	input := accountInput{
		Current: r.PostFormValue("current_password"),
		New:     r.PostFormValue("new_password"),
		Confirm: r.PostFormValue("confirm_password"),
	}
	errs, err := fieldErrors(validate.Struct(input))
	if err != nil {
		applog.Error(r.Context(), "failed to validate account form", "error", err)
		http.Error(w, "unable to validate form", http.StatusInternalServerError)
		return
	}
	if errs == nil && bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Current)) != nil {
		errs = map[string]string{"current_password": "Current password is incorrect."}
	}
	if len(errs) > 0 {
		applog.Debug(r.Context(), "password change rejected", "userID", user.ID)
		renderPageStatus(w, r, http.StatusUnprocessableEntity, "Account", pages.Account(pages.AccountForm{Errors: errs}))
		return
	}

	hashed, err := hashPassword(input.New)
	if err != nil {
		applog.Error(r.Context(), "failed to hash password", "error", err)
		http.Error(w, "unable to update password", http.StatusInternalServerError)
		return
	}
	if err := database.WithContext(r.Context()).Model(user).Update("password_hash", hashed).Error; err != nil {
		applog.Error(r.Context(), "failed to update password", "error", err, "userID", user.ID)
		http.Error(w, "unable to update password", http.StatusInternalServerError)
		return
	}
	if err := sessionManager.RenewToken(r.Context()); err != nil {
		applog.Error(r.Context(), "failed to renew session token", "error", err)
	}
	applog.Info(r.Context(), "password changed", "userID", user.ID)
	setFlash(r, "success", "Password updated.")
	redirectTo(w, r, "/settings/account")
}

// Settings sends visitors to the profile page.
func Settings(w http.ResponseWriter, r *http.Request) {
	redirectTo(w, r, "/settings/profile")
}
