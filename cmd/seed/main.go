package main

import (
	"context"
	"log"

	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// starterCategories gives a fresh install something to hang tasks on.
var starterCategories = []string{"Home", "Work", "Shopping", "Errands", "Leisure"}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repo := repository.NewCategoryRepository(gormDB)
	ctx := context.Background()

	existing, err := repo.ListSorted(ctx)
	if err != nil {
		log.Fatalf("Failed to list categories: %v", err)
	}
	present := make(map[string]bool, len(existing))
	for _, category := range existing {
		present[category.CategoryName] = true
	}

	created := 0
	for _, name := range starterCategories {
		if present[name] {
			continue
		}
		if err := repo.Create(ctx, &model.Category{CategoryName: name}); err != nil {
			log.Fatalf("Failed to create category %q: %v", name, err)
		}
		created++
	}

	log.Printf("Seed complete: %d categories created, %d already present", created, len(existing))
}
