package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

// searchIndexName is the FULLTEXT index backing task search. Search issues
// MATCH ... AGAINST over exactly these columns; without the index MySQL
// rejects the query, so it is created alongside the schema.
const searchIndexName = "idx_tasks_search"

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate runs schema migrations and ensures the task search index exists.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Category{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	if !db.Migrator().HasIndex(&model.Task{}, searchIndexName) {
		stmt := fmt.Sprintf(
			"CREATE FULLTEXT INDEX %s ON tasks (task_name, task_description, category_name)",
			searchIndexName,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create search index: %w", err)
		}
	}
	return nil
}
