package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/dto"
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/service"
	autherror "github.com/nomit-kasera/the-apna-gym-admin-page/internal/errors"
	"github.com/nomit-kasera/the-apna-gym-admin-page/pkg/constant"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	out, err := h.authService.Login(c.UserContext(), input)
	if err != nil {
		status := fiber.StatusUnauthorized
		if errors.Is(err, autherror.ErrMissingFields) || errors.Is(err, autherror.ErrInvalidEmail) {
			status = fiber.StatusBadRequest
		}

		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if ok := h.authService.SignOut(); !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to clear session",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.authService.Session())
}

// LoginEntry is the unauthenticated landing endpoint. It echoes the ref
// parameter so a successful login can send the visitor back where they
// were headed.
func (h *AuthHandler) LoginEntry(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":         "login required",
		constant.RefParam: c.Query(constant.RefParam),
	})
}
