package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/handler"
	"taskboard/internal/repository"
	"taskboard/internal/router"
	"taskboard/internal/service"
	"taskboard/internal/view"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := view.New(cfg.TemplateGlob)
	if err != nil {
		log.Fatalf("template init: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Initialize session components
	sessionStore := auth.NewRedisSessionStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := auth.NewManager(cfg.SessionSecret, cfg.SessionTTL, sessionStore)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions)
	taskService := service.NewTaskService(taskRepo)
	categoryService := service.NewCategoryService(categoryRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions.TTL())
	taskHandler := handler.NewTaskHandler(taskService, categoryService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	// Register routes
	router.Register(e, sessions, authHandler, taskHandler, categoryHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
