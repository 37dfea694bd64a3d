package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndis-platform/admin-console/internal/api/dto"
	"github.com/ndis-platform/admin-console/internal/client"
	"github.com/ndis-platform/admin-console/internal/domain"
	"github.com/ndis-platform/admin-console/internal/service"
	apperrors "github.com/ndis-platform/admin-console/pkg/util"
)

const staffCreatedText = "Staff member created successfully! Automation workflows triggered."

// StaffHandler serves the staff list and the add-staff form.
type StaffHandler struct {
	pages *Pages
}

// NewStaffHandler constructs handler.
func NewStaffHandler(pages *Pages) *StaffHandler {
	return &StaffHandler{pages: pages}
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	staff, err := ws.Staff.List(c.UserContext())
	if err != nil {
		if client.IsUnauthorized(err) {
			return toLogin(c)
		}
		return h.pages.render(c, failureStatus(err), viewStaffList, fiber.Map{
			"Title": "Staff",
			"Error": apperrors.UserMessage(err, "Failed to load staff"),
		})
	}
	return h.pages.render(c, fiber.StatusOK, viewStaffList, fiber.Map{
		"Title": "Staff",
		"Staff": staff,
	})
}

// New handles GET /staff/new.
func (h *StaffHandler) New(c *fiber.Ctx) error {
	return h.form(c, fiber.StatusOK, dto.StaffCreateRequest{}, "")
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid staff form")
	}

	if _, err := ws.Staff.Create(c.UserContext(), req); err != nil {
		if client.IsUnauthorized(err) {
			return toLogin(c)
		}
		req.Password = ""
		return h.form(c, failureStatus(err), req, apperrors.UserMessage(err, "Failed to create staff member"))
	}
	h.pages.notify(c, service.Notice{Level: service.NoticeInfo, Text: staffCreatedText})
	return c.Redirect("/staff", fiber.StatusSeeOther)
}

// Delete handles POST /staff/:id/delete.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.NewValidationError("invalid staff id")
	}

	if err := ws.Staff.Delete(c.UserContext(), id); err != nil {
		if client.IsUnauthorized(err) {
			return toLogin(c)
		}
		h.pages.notify(c, service.Notice{
			Level: service.NoticeWarning,
			Text:  apperrors.UserMessage(err, "Failed to delete staff member"),
		})
	} else {
		h.pages.notify(c, service.Notice{Level: service.NoticeInfo, Text: "Staff member deleted."})
	}
	return c.Redirect("/staff", fiber.StatusSeeOther)
}

func (h *StaffHandler) form(c *fiber.Ctx, status int, req dto.StaffCreateRequest, msg string) error {
	return h.pages.render(c, status, viewStaffForm, fiber.Map{
		"Title":     "Add Staff",
		"Form":      req,
		"Positions": domain.StaffPositions,
		"Error":     msg,
	})
}
