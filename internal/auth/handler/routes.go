package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/service"
	"github.com/nomit-kasera/the-apna-gym-admin-page/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, guard *service.Guard) {
	app.Get(constant.LoginPath, h.LoginEntry)
	app.Post("/api/v1/login", h.Login)

	// Session endpoints sit behind the guard so a stale session is
	// repaired (or rejected) before it is inspected or torn down.
	session := app.Group("/api/v1/session", guard.Middleware())
	session.Get("/", h.Session)
	session.Delete("/", h.Logout)
}
