package repository

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/internal/model"
)

// newTestDB opens an isolated in-memory SQLite database and migrates the
// schema. Search is not covered here: MATCH ... AGAINST is MySQL-only.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Task{}, &model.Category{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
