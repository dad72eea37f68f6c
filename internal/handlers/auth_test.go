package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dashkit/internal/db/mock"
	"dashkit/models"
)

func withTestSessionManager(t *testing.T) (*scs.SessionManager, func()) {
	t.Helper()
	original := sessionManager
	sm := scs.New()
	sessionManager = sm
	return sm, func() {
		sessionManager = original
	}
}

func withTestDatabase(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	original := database
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	database = db
	return db, func() {
		database = original
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

// withMockDatabase installs a seeded database and a fresh session manager.
func withMockDatabase(t *testing.T) (*gorm.DB, *scs.SessionManager) {
	t.Helper()
	db, err := mock.New(context.Background())
	if err != nil {
		t.Fatalf("mock database: %v", err)
	}
	originalDB, originalSM := database, sessionManager
	sm := scs.New()
	Configure(sm, db)
	t.Cleanup(func() {
		Configure(originalSM, originalDB)
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db, sm
}

func findSeeded(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("load %s: %v", email, err)
	}
	return user
}

// serve runs req through a chi router holding route, inside a loaded session. A non-zero
// userID signs the request in. The session context is returned for inspection.
func serve(t *testing.T, pattern string, h http.HandlerFunc, req *http.Request, userID uint) (*httptest.ResponseRecorder, context.Context) {
	t.Helper()
	ctx, err := sessionManager.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	if userID > 0 {
		sessionManager.Put(ctx, sessionAuthenticatedKey, true)
		sessionManager.Put(ctx, sessionUserIDKey, int(userID))
	}
	router := chi.NewRouter()
	router.HandleFunc(pattern, h)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req.WithContext(ctx))
	return rr, ctx
}

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if isHTMX(req) {
		t.Fatal("expected false when no HTMX headers present")
	}
	req.Header.Set("HX-Request", "true")
	if !isHTMX(req) {
		t.Fatal("expected true when HX-Request header present")
	}
}

func TestActiveSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if ActiveSession(req) {
		t.Fatal("expected inactive session when manager is nil")
	}

	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	req = req.WithContext(ctx)
	sm.Put(req.Context(), sessionAuthenticatedKey, true)
	sm.Put(req.Context(), sessionUserIDKey, 42)

	if !ActiveSession(req) {
		t.Fatal("expected active session when flags are set")
	}
}

func TestCurrentUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := currentUserID(req); ok {
		t.Fatal("expected currentUserID to fail without session manager")
	}

	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	req = req.WithContext(ctx)

	if _, ok := currentUserID(req); ok {
		t.Fatal("expected false when user id not set")
	}

	sm.Put(req.Context(), sessionUserIDKey, 7)
	id, ok := currentUserID(req)
	if !ok || id != 7 {
		t.Fatalf("expected user id 7, got %d (ok=%t)", id, ok)
	}
}

func TestEstablishSession(t *testing.T) {
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	req = req.WithContext(ctx)

	user := &models.User{Model: gorm.Model{ID: 3}, Email: "user@example.com", Name: "User"}
	if err := establishSession(req, user); err != nil {
		t.Fatalf("establishSession returned error: %v", err)
	}

	if !sm.GetBool(req.Context(), sessionAuthenticatedKey) {
		t.Fatal("expected session authenticated flag to be true")
	}
	if got := sm.GetInt(req.Context(), sessionUserIDKey); got != 3 {
		t.Fatalf("expected session user id 3, got %d", got)
	}
	if got := sm.GetString(req.Context(), sessionUserEmailKey); got != "user@example.com" {
		t.Fatalf("unexpected email %q", got)
	}
	if got := sm.GetString(req.Context(), sessionUserNameKey); got != "User" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestEstablishSessionWithoutManager(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if err := establishSession(req, &models.User{}); err == nil {
		t.Fatal("expected error when session manager is nil")
	}
}

func TestCreateUser(t *testing.T) {
	db, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	req := httptest.NewRequest(http.MethodPost, "/users/new", nil)
	user := &models.User{Email: "Example@Email.com", Name: "  Test User  "}
	if err := createUser(req, user, "password123"); err != nil {
		t.Fatalf("createUser returned error: %v", err)
	}
	if user.Email != "example@email.com" {
		t.Fatalf("expected email to be lowercased, got %q", user.Email)
	}
	if user.Name != "Test User" {
		t.Fatalf("expected trimmed name, got %q", user.Name)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("password hash does not match original: %v", err)
	}

	var stored models.User
	if err := db.Where("email = ?", "example@email.com").First(&stored).Error; err != nil {
		t.Fatalf("expected user persisted: %v", err)
	}
	if stored.Role != models.RoleUser || stored.Status != models.StatusActive {
		t.Fatalf("expected column defaults, got role=%q status=%q", stored.Role, stored.Status)
	}
}

func TestCreateUserWithoutDatabase(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users/new", nil)
	if err := createUser(req, &models.User{Email: "test@example.com"}, "password"); !errors.Is(err, gorm.ErrInvalidDB) {
		t.Fatalf("expected ErrInvalidDB, got %v", err)
	}
}

func TestFindUserByEmail(t *testing.T) {
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := findUserByEmail(req, "missing@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for missing user, got %v", err)
	}

	if err := createUser(req, &models.User{Email: "user@example.com", Name: "User"}, "password123"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	user, err := findUserByEmail(req, " USER@example.com ")
	if err != nil {
		t.Fatalf("findUserByEmail returned error: %v", err)
	}
	if user.Email != "user@example.com" {
		t.Fatalf("expected lowercase email, got %q", user.Email)
	}
}

func TestAuthenticate(t *testing.T) {
	sm, smCleanup := withTestSessionManager(t)
	t.Cleanup(smCleanup)
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	if err := createUser(req, &models.User{Email: "user@example.com", Name: "User"}, "password123"); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if err := createUser(req, &models.User{Email: "gone@example.com", Name: "Gone", Status: models.StatusInactive}, "password123"); err != nil {
		t.Fatalf("failed to create inactive user: %v", err)
	}

	if ok := authenticate(w, req, "user@example.com", "password123"); !ok {
		t.Fatal("expected authentication to succeed")
	}
	if !sm.GetBool(req.Context(), sessionAuthenticatedKey) {
		t.Fatal("expected session authenticated flag to be true")
	}

	if ok := authenticate(w, req, "user@example.com", "wrong"); ok {
		t.Fatal("expected authentication failure with bad password")
	}
	if message := sm.PopString(req.Context(), sessionLoginMessageKey); message == "" {
		t.Fatal("expected login failure message to be set")
	}

	if ok := authenticate(w, req, "gone@example.com", "password123"); ok {
		t.Fatal("expected inactive account to be refused")
	}
	if message := sm.PopString(req.Context(), sessionLoginMessageKey); !strings.Contains(message, "deactivated") {
		t.Fatalf("unexpected message for inactive account: %q", message)
	}
}

func TestLoginFlow(t *testing.T) {
	withMockDatabase(t)

	get := httptest.NewRequest(http.MethodGet, "/login", nil)
	rr, _ := serve(t, "/login", Login, get, 0)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `action="/login"`) {
		t.Fatalf("expected login form, got %d", rr.Code)
	}

	bad := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email="+mock.AdminEmail+"&password=nope"))
	bad.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr, _ = serve(t, "/login", Login, bad, 0)
	if rr.Code != http.StatusUnauthorized || !strings.Contains(rr.Body.String(), "Invalid email or password") {
		t.Fatalf("expected 401 with message, got %d", rr.Code)
	}

	good := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email="+mock.AdminEmail+"&password="+mock.AdminPassword))
	good.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr, ctx := serve(t, "/login", Login, good, 0)
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %d %q", rr.Code, rr.Header().Get("Location"))
	}
	if sessionManager.GetString(ctx, sessionUserNameKey) != "Morgan Reyes" {
		t.Fatalf("expected session to carry the user name")
	}
}

func TestRequireAuthentication(t *testing.T) {
	withMockDatabase(t)

	protected := RequireAuthentication(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr, _ := serve(t, "/dashboard", protected.ServeHTTP, httptest.NewRequest(http.MethodGet, "/dashboard", nil), 0)
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to login, got %d", rr.Code)
	}
	rr, _ = serve(t, "/dashboard", protected.ServeHTTP, httptest.NewRequest(http.MethodGet, "/dashboard", nil), 1)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected protected handler to run, got %d", rr.Code)
	}
}

func TestLogout(t *testing.T) {
	withMockDatabase(t)

	rr, _ := serve(t, "/logout", Logout, httptest.NewRequest(http.MethodPut, "/logout", nil), 1)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
	rr, ctx := serve(t, "/logout", Logout, httptest.NewRequest(http.MethodPost, "/logout", nil), 1)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rr.Code)
	}
	if sessionManager.GetBool(ctx, sessionAuthenticatedKey) {
		t.Fatal("expected session to be destroyed")
	}
}

func TestRedirectToLogin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	redirectToLogin(w, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for HTMX redirect, got %d", w.Code)
	}
	if w.Header().Get("HX-Redirect") != "/login" {
		t.Fatalf("expected HX-Redirect header to be set")
	}

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w = httptest.NewRecorder()
	redirectToLogin(w, req)
	if loc := w.Header().Get("Location"); w.Code != http.StatusSeeOther || loc != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", w.Code, loc)
	}
}

func TestRedirectToApp(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Header.Set("HX-Boosted", "true")
	w := httptest.NewRecorder()
	redirectToApp(w, req)
	if w.Code != http.StatusSeeOther || w.Header().Get("HX-Redirect") != "/dashboard" {
		t.Fatalf("expected HTMX redirect to /dashboard, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/login", nil)
	w = httptest.NewRecorder()
	redirectToApp(w, req)
	if loc := w.Header().Get("Location"); w.Code != http.StatusSeeOther || loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %d %q", w.Code, loc)
	}
}
