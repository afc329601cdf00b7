package main

import (
	"log"
	"net/http"
	"time"

	_ "notebase/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"notebase/internal/auth"
	"notebase/internal/cache"
	"notebase/internal/config"
	"notebase/internal/db"
	"notebase/internal/handler"
	"notebase/internal/model"
	"notebase/internal/repository"
	"notebase/internal/router"
	"notebase/internal/service"
)

// @title Notebase API
// @version 1.0
// @description User registration, password and Google sign-in with JWT sessions, and per-user topics.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Topic{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	topicRepo := repository.NewTopicRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.AccessTokenTTLMin)*time.Minute)
	googleVerifier := auth.NewGoogleVerifier(cfg.GoogleClientID)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, googleVerifier)
	topicService := service.NewTopicService(topicRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg)
	topicHandler := handler.NewTopicHandler(topicService)

	// Register routes
	router.Register(e, authService, authHandler, topicHandler)

	if cfg.GoogleClientID == "" {
		log.Println("GOOGLE_CLIENT_ID not set, Google sign-in will reject all tokens")
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
