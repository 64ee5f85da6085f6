package service

import (
	"testing"

	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/pkg/database"
	"ielts_prep_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRepos(t *testing.T) (*gorm.DB, *repository.UserRepository, *repository.AttemptRepository, *repository.AnalyticsRepository) {
	t.Helper()
	db := newTestDB(t)
	return db,
		repository.NewUserRepository(db),
		repository.NewAttemptRepository(db),
		repository.NewAnalyticsRepository(db)
}

func createTestUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{
		Name:     "Wei Chen",
		Email:    "wei.chen@example.com",
		Password: "hashed",
		Role:     model.Student,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func floatPtrEq(a *float64, want float64) bool {
	return a != nil && *a == want
}
