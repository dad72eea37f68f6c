package mock

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "dashkit/internal/log"
	"dashkit/models"
)

const (
	// AdminEmail and AdminPassword sign in to the seeded administrator account.
	AdminEmail    = "admin@dashkit.dev"
	AdminPassword = "dashkit"
)

var instances atomic.Int64

// New returns an in-memory sqlite database seeded with an administrator and a few
// member accounts. Every call opens an isolated database.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	dsn := fmt.Sprintf("file:dashkit-mock-%d?mode=memory&cache=shared", instances.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{
			Name:     "Morgan Reyes",
			Email:    AdminEmail,
			Role:     models.RoleAdmin,
			Status:   models.StatusActive,
			Location: "Lisbon, PT",
			Bio:      "Keeps the lights on.",
		},
		{Name: "Priya Natarajan", Email: "priya@dashkit.dev", Role: models.RoleModerator, Status: models.StatusActive},
		{Name: "Tomasz Wilk", Email: "tomasz@dashkit.dev", Role: models.RoleUser, Status: models.StatusActive},
		{Name: "Ines Duarte", Email: "ines@dashkit.dev", Role: models.RoleUser, Status: models.StatusInactive},
	}

	for i := range users {
		users[i].PasswordHash = string(password)
		if err := db.WithContext(ctx).Create(&users[i]).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded", "users", len(users))
	return nil
}
