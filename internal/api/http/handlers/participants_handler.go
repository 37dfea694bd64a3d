package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndis-platform/admin-console/internal/api/dto"
	"github.com/ndis-platform/admin-console/internal/client"
	"github.com/ndis-platform/admin-console/internal/service"
	apperrors "github.com/ndis-platform/admin-console/pkg/util"
)

// ParticipantsHandler serves the participant list and form.
type ParticipantsHandler struct {
	pages *Pages
}

// NewParticipantsHandler constructs handler.
func NewParticipantsHandler(pages *Pages) *ParticipantsHandler {
	return &ParticipantsHandler{pages: pages}
}

// List handles GET /participants.
func (h *ParticipantsHandler) List(c *fiber.Ctx) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	participants, err := ws.Participants.List(c.UserContext())
	if err != nil {
		if client.IsUnauthorized(err) {
			return toLogin(c)
		}
		return h.pages.render(c, failureStatus(err), viewParticipantList, fiber.Map{
			"Title": "Participants",
			"Error": apperrors.UserMessage(err, "Failed to load participants"),
		})
	}
	return h.pages.render(c, fiber.StatusOK, viewParticipantList, fiber.Map{
		"Title":        "Participants",
		"Participants": participants,
	})
}

// New handles GET /participants/new.
func (h *ParticipantsHandler) New(c *fiber.Ctx) error {
	return h.form(c, fiber.StatusOK, dto.ParticipantCreateRequest{}, "")
}

// Create handles POST /participants.
func (h *ParticipantsHandler) Create(c *fiber.Ctx) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	var req dto.ParticipantCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid participant form")
	}

	if _, err := ws.Participants.Create(c.UserContext(), req); err != nil {
		if client.IsUnauthorized(err) {
			return toLogin(c)
		}
		return h.form(c, failureStatus(err), req, apperrors.UserMessage(err, "Failed to create participant"))
	}
	h.pages.notify(c, service.Notice{Level: service.NoticeInfo, Text: "Participant created successfully."})
	return c.Redirect("/participants", fiber.StatusSeeOther)
}

func (h *ParticipantsHandler) form(c *fiber.Ctx, status int, req dto.ParticipantCreateRequest, msg string) error {
	return h.pages.render(c, status, viewParticipantForm, fiber.Map{
		"Title": "Add Participant",
		"Form":  req,
		"Error": msg,
	})
}
