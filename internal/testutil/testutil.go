// Package testutil provides an in-memory database and seed helpers shared
// by the service and repository tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"courses_platform_backend/internal/model"
	"courses_platform_backend/pkg/database"
	pkglogger "courses_platform_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	pkglogger.Log = zap.NewNop()
}

// NewDB opens a fresh in-memory SQLite database, migrated to the full
// schema. Each test gets its own named memory database so parallel tests
// do not share tables.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// A single connection keeps the shared-cache memory database alive for
	// the duration of the test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func CreateUser(t *testing.T, db *gorm.DB, name, email string, role model.UserRole) *model.User {
	t.Helper()

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: "$2a$10$abcdefghijklmnopqrstuv",
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func CreateCourse(t *testing.T, db *gorm.DB, title string, teacherID uint) *model.Course {
	t.Helper()

	course := &model.Course{
		Title:     title,
		Category:  "programming",
		Level:     model.Beginner,
		TeacherID: teacherID,
		IsActive:  true,
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("seed course %s: %v", title, err)
	}
	return course
}

func CreateMaterial(t *testing.T, db *gorm.DB, courseID uint, title string, mtype model.MaterialType, order int) *model.Material {
	t.Helper()

	material := &model.Material{
		CourseID:   courseID,
		Title:      title,
		Type:       mtype,
		OrderIndex: order,
	}
	if err := db.Create(material).Error; err != nil {
		t.Fatalf("seed material %s: %v", title, err)
	}
	return material
}

func CreateActivity(t *testing.T, db *gorm.DB, userID, materialID uint, action string, ts time.Time, duration, score *float64) *model.Activity {
	t.Helper()

	activity := &model.Activity{
		UserID:     userID,
		MaterialID: materialID,
		Action:     action,
		Timestamp:  ts,
		Duration:   duration,
		Score:      score,
	}
	if err := db.Create(activity).Error; err != nil {
		t.Fatalf("seed activity: %v", err)
	}
	return activity
}

func Float(v float64) *float64 {
	return &v
}
