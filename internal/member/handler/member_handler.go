package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	apperror "github.com/nomit-kasera/the-apna-gym-admin-page/internal/errors"
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/domain"
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/dto"
	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/member/service"
)

type MemberHandler struct {
	directory *service.Directory
	records   domain.RecordService
}

func NewMemberHandler(directory *service.Directory, records domain.RecordService) *MemberHandler {
	return &MemberHandler{directory: directory, records: records}
}

// GetMembers refreshes the loaded page and returns the filtered window.
// Query parameters: page, pageSize, q.
func (h *MemberHandler) GetMembers(c *fiber.Ctx) error {
	if pageSize := c.QueryInt("pageSize"); pageSize > 0 {
		h.directory.SetPageSize(pageSize)
	}
	h.directory.SetQuery(c.Query("q"))

	if err := h.directory.Refresh(c.UserContext()); err != nil {
		return serviceError(c, err)
	}

	if page := c.QueryInt("page"); page > 0 {
		h.directory.SetPage(page)
	}

	rows, window := h.directory.Visible()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"rows":         rows,
		"pagination":   window,
		"total_pages":  window.TotalPages(),
		"server_total": h.directory.ServerTotal(),
	})
}

func (h *MemberHandler) CreateMember(c *fiber.Ctx) error {
	draft, ok := parseDraft(c)
	if !ok {
		return nil
	}

	if err := h.directory.Create(c.UserContext(), draft); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "member added successfully",
	})
}

func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	draft, ok := parseDraft(c)
	if !ok {
		return nil
	}

	if err := h.directory.Update(c.UserContext(), c.Params("id"), draft); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "member updated successfully",
	})
}

// RequestDelete opens the two-step confirmation; no backend call happens
// here.
func (h *MemberHandler) RequestDelete(c *fiber.Ctx) error {
	// Copy the param out of fiber's reused request buffer: the id is
	// stored past this request's lifetime as the pending-delete target.
	if err := h.directory.RequestDelete(utils.CopyString(c.Params("id"))); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"pending_delete": h.directory.PendingDelete(),
	})
}

func (h *MemberHandler) ConfirmDelete(c *fiber.Ctx) error {
	if err := h.directory.ConfirmDelete(c.UserContext()); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "member deleted successfully",
	})
}

func (h *MemberHandler) CancelDelete(c *fiber.Ctx) error {
	h.directory.CancelDelete()

	return c.SendStatus(fiber.StatusNoContent)
}

// NewDraft returns a prefilled new-member form: start date today,
// monthly tier, end date derived from the two.
func (h *MemberHandler) NewDraft(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(service.DefaultDraft(time.Now()))
}

// Stats serves the dashboard snapshot with the derived expiring-this-
// month count (current month name lookup, zero when absent).
func (h *MemberHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.records.GetStats(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.StatsOutput{
		Stats:             *stats,
		ExpiringThisMonth: stats.ExpiringIn(time.Now().Month().String()),
	})
}

func (h *MemberHandler) Recent(c *fiber.Ctx) error {
	members, err := h.records.GetLatestRegistrations(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": members,
	})
}

// parseDraft reads and parses the member payload, writing the error
// response itself when parsing fails.
func parseDraft(c *fiber.Ctx) (domain.MemberDraft, bool) {
	var input dto.MemberInput
	if err := c.BodyParser(&input); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
		return domain.MemberDraft{}, false
	}

	draft, err := input.ToDraft()
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		return domain.MemberDraft{}, false
	}

	return draft, true
}

func serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	switch {
	case errors.Is(err, apperror.ErrMissingFields),
		errors.Is(err, apperror.ErrUnknownTier),
		errors.Is(err, apperror.ErrMissingMemberID):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrNoPendingDelete):
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
