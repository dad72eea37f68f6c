package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	applog "dashkit/internal/log"
	"dashkit/internal/views/pages"
	"dashkit/models"
)

func listUsers(r *http.Request) ([]models.User, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}
	var users []models.User
	err := database.WithContext(r.Context()).Order("created_at desc").Order("id desc").Find(&users).Error
	return users, err
}

// Users lists accounts. HTMX requests targeting the table receive only the table.
func Users(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	users, err := listUsers(r)
	if err != nil {
		applog.Error(r.Context(), "failed to list users", "error", err)
		http.Error(w, "unable to load users", http.StatusInternalServerError)
		return
	}

	filters := pages.UserFiltersFromRequest(r)
	filtered := pages.FilterUsers(users, filters)
	applog.Debug(r.Context(), "listing users", "query", filters.Query, "total", len(users), "matched", len(filtered))

	if isHTMX(r) && r.Header.Get("HX-Target") == pages.UsersTableID {
		renderComponent(w, r, pages.UsersTable(filtered, true))
		return
	}
	renderPage(w, r, "Users", pages.Users(pages.UsersData{Users: filtered, Filters: filters}))
}

func readUserInput(r *http.Request) userInput {
	return userInput{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Email:    strings.ToLower(strings.TrimSpace(r.PostFormValue("email"))),
		Role:     strings.TrimSpace(r.PostFormValue("role")),
		Status:   strings.TrimSpace(r.PostFormValue("status")),
		Phone:    strings.TrimSpace(r.PostFormValue("phone")),
		Location: strings.TrimSpace(r.PostFormValue("location")),
	}
}

func (in userInput) apply(user *models.User) {
	user.Name = in.Name
	user.Email = in.Email
	user.Role = in.Role
	user.Status = in.Status
	user.Phone = in.Phone
	user.Location = in.Location
}

// emailTaken reports whether another account, other than exceptID, uses email.
func emailTaken(r *http.Request, email string, exceptID uint) (bool, error) {
	existing, err := findUserByEmail(r, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != exceptID, nil
}

// UserNew renders the account creation form and creates accounts.
func UserNew(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		renderPage(w, r, "New user", pages.UserFormView(pages.UserForm{IsNew: true}))
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		input := newUserInput{userInput: readUserInput(r), Password: r.PostFormValue("password")}
		var user models.User
		input.apply(&user)

		errs, err := fieldErrors(validate.Struct(input))
		if err != nil {
			applog.Error(r.Context(), "failed to validate user form", "error", err)
			http.Error(w, "unable to validate form", http.StatusInternalServerError)
			return
		}
		if errs == nil {
			taken, err := emailTaken(r, input.Email, 0)
			if err != nil {
				applog.Error(r.Context(), "failed to check email uniqueness", "error", err)
				http.Error(w, "unable to create user", http.StatusInternalServerError)
				return
			}
			if taken {
				errs = map[string]string{"email": "An account with that email already exists."}
			}
		}
		if len(errs) > 0 {
			applog.Debug(r.Context(), "user form rejected", "fields", len(errs))
			renderPageStatus(w, r, http.StatusUnprocessableEntity, "New user", pages.UserFormView(pages.UserForm{User: user, Errors: errs, IsNew: true}))
			return
		}

		if err := createUser(r, &user, input.Password); err != nil {
			applog.Error(r.Context(), "failed to create user", "error", err)
			http.Error(w, "unable to create user", http.StatusInternalServerError)
			return
		}
		applog.Info(r.Context(), "user created", "userID", user.ID, "role", user.Role)
		setFlash(r, "success", "Created "+user.Name+".")
		redirectTo(w, r, "/users")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func loadUserParam(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	id := pages.ParseUint(chi.URLParam(r, "id"))
	if id == 0 {
		http.NotFound(w, r)
		return nil, false
	}
	if database == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return nil, false
	}
	user := &models.User{}
	if err := database.WithContext(r.Context()).First(user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		applog.Error(r.Context(), "failed to load user", "error", err, "userID", id)
		http.Error(w, "unable to load user", http.StatusInternalServerError)
		return nil, false
	}
	return user, true
}

// UserEdit renders and applies changes to an existing account.
func UserEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user, ok := loadUserParam(w, r)
	if !ok {
		return
	}
	if r.Method == http.MethodGet {
		renderPage(w, r, "Edit user", pages.UserFormView(pages.UserForm{User: *user}))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	input := readUserInput(r)
	input.apply(user)

	errs, err := fieldErrors(validate.Struct(input))
	if err != nil {
		applog.Error(r.Context(), "failed to validate user form", "error", err)
		http.Error(w, "unable to validate form", http.StatusInternalServerError)
		return
	}
	if errs == nil {
		taken, err := emailTaken(r, input.Email, user.ID)
		if err != nil {
			applog.Error(r.Context(), "failed to check email uniqueness", "error", err)
			http.Error(w, "unable to update user", http.StatusInternalServerError)
			return
		}
		if taken {
			errs = map[string]string{"email": "An account with that email already exists."}
		}
	}
	if len(errs) > 0 {
		renderPageStatus(w, r, http.StatusUnprocessableEntity, "Edit user", pages.UserFormView(pages.UserForm{User: *user, Errors: errs}))
		return
	}

	if err := database.WithContext(r.Context()).Save(user).Error; err != nil {
		applog.Error(r.Context(), "failed to update user", "error", err, "userID", user.ID)
		http.Error(w, "unable to update user", http.StatusInternalServerError)
		return
	}
	applog.Info(r.Context(), "user updated", "userID", user.ID)
	setFlash(r, "success", "Saved "+user.Name+".")
	redirectTo(w, r, "/users")
}

// UserDelete removes an account. Administrators cannot delete themselves.
func UserDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user, ok := loadUserParam(w, r)
	if !ok {
		return
	}
	if current, ok := currentUserID(r); ok && current == user.ID {
		setFlash(r, "warning", "You cannot delete your own account.")
		redirectTo(w, r, "/users")
		return
	}
	if err := database.WithContext(r.Context()).Unscoped().Delete(user).Error; err != nil {
		applog.Error(r.Context(), "failed to delete user", "error", err, "userID", user.ID)
		setFlash(r, "error", "We couldn't delete this user. Please try again.")
		redirectTo(w, r, "/users")
		return
	}
	applog.Info(r.Context(), "user deleted", "userID", user.ID)
	setFlash(r, "success", "Deleted "+user.Name+".")
	redirectTo(w, r, "/users")
}
