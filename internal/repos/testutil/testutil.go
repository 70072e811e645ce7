package testutil

import (
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a fresh in-memory sqlite database per test. Primary keys are
// generated by the models' BeforeCreate hooks, so the schema carries no
// DB-level uuid defaults and migrates on any driver.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.WellbeingRecord{},
		&types.Alert{},
		&types.ChatSession{},
	); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

// NewUser inserts a minimal active user and returns it.
func NewUser(tb testing.TB, db *gorm.DB, email string) *types.User {
	tb.Helper()
	user := &types.User{
		Email:    email,
		Password: "hashed-pw",
		FullName: "Test User",
		Role:     types.RoleUser,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		tb.Fatalf("failed to create test user: %v", err)
	}
	return user
}
