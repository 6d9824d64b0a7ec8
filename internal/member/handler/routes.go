package handler

import (
	"github.com/gofiber/fiber/v2"

	authservice "github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/service"
)

func RegisterRoutes(app *fiber.App, h *MemberHandler, guard *authservice.Guard) {
	api := app.Group("/api/v1", guard.Middleware())

	members := api.Group("/members")
	members.Get("/", h.GetMembers)
	members.Post("/", h.CreateMember)
	members.Get("/draft", h.NewDraft)
	members.Put("/:id", h.UpdateMember)
	members.Post("/:id/delete", h.RequestDelete)
	members.Post("/delete/confirm", h.ConfirmDelete)
	members.Post("/delete/cancel", h.CancelDelete)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", h.Stats)
	dashboard.Get("/recent", h.Recent)
}
