package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Darrly207/Gemetry-BE/config"
	"github.com/Darrly207/Gemetry-BE/db"
	authhandler "github.com/Darrly207/Gemetry-BE/internal/auth/handler"
	authrepo "github.com/Darrly207/Gemetry-BE/internal/auth/repository/postgres"
	authservice "github.com/Darrly207/Gemetry-BE/internal/auth/service"
	problemhandler "github.com/Darrly207/Gemetry-BE/internal/problem/handler"
	problemrepo "github.com/Darrly207/Gemetry-BE/internal/problem/repository/postgres"
	problemservice "github.com/Darrly207/Gemetry-BE/internal/problem/service"
	"github.com/Darrly207/Gemetry-BE/pkg/gemini"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}

	repo := authrepo.NewRepository(pool)
	tokenService := authservice.NewTokenService(cfg.TokenSecret, cfg.TokenExpiryHours)
	userService := authservice.NewUserService(repo, repo, tokenService)
	authenticator := authservice.NewAuthenticator(tokenService, repo)
	authHandler := authhandler.NewAuthHandler(userService)

	problemRepo := problemrepo.NewRepository(pool)
	solver := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	problemService := problemservice.NewProblemService(problemRepo, solver)
	problemHandler := problemhandler.NewProblemHandler(problemService, cfg.UploadDir)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	requireAuth := authhandler.RequireAuth(authenticator)
	authhandler.RegisterRoutes(app, authHandler, requireAuth)
	problemhandler.RegisterRoutes(app, problemHandler, requireAuth)

	log.Printf("Server running on port %s", cfg.Port)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
