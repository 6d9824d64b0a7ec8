package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/nomit-kasera/the-apna-gym-admin-page/config"
	authhandler "github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/handler"
	authservice "github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/service"
	memberhandler "github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/handler"
	memberservice "github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/service"
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/record"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logg := newLogger(cfg.Env)

	store := authservice.NewStore()
	profiles := authservice.NewFileProfileStore(cfg.ProfileDir, logg)
	recordClient := record.NewClient(cfg.RecordAPIURL, time.Duration(cfg.RecordTimeoutSec)*time.Second, store, logg)

	guard := authservice.NewGuard(store, profiles, recordClient, logg)
	authService := authservice.NewAuthService(recordClient, store, profiles, logg)
	authHandler := authhandler.NewAuthHandler(authService)

	directory := memberservice.NewDirectory(recordClient, logg)
	directory.SetPageSize(cfg.PageSize)
	memberHandler := memberhandler.NewMemberHandler(directory, recordClient)

	app := fiber.New(fiber.Config{
		AppName: "ApnaGymAdmin",
	})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(compress.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))
	app.Use(etag.New())

	authhandler.RegisterRoutes(app, authHandler, guard)
	memberhandler.RegisterRoutes(app, memberHandler, guard)

	logg.Info("starting admin backend", "port", cfg.Port, "record_api", cfg.RecordAPIURL)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logg.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(env string) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
