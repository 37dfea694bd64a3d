package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ndis-platform/admin-console/internal/auth"
	"github.com/ndis-platform/admin-console/internal/client"
	"github.com/ndis-platform/admin-console/internal/service"
	"github.com/ndis-platform/admin-console/internal/validation"
)

// Views, one per template under views/templates.
const (
	viewLogin           = "login"
	viewDashboard       = "dashboard"
	viewStaffList       = "staff_list"
	viewStaffForm       = "staff_form"
	viewParticipantList = "participant_list"
	viewParticipantForm = "participant_form"
)

// Pages renders views with the fields every page shares: pending notices and
// the signed-in user.
type Pages struct {
	notices *service.NotificationService
}

// NewPages constructs the renderer.
func NewPages(notices *service.NotificationService) *Pages {
	return &Pages{notices: notices}
}

func (p *Pages) render(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if ws, ok := auth.WorkspaceFromContext(c); ok {
		if p.notices != nil {
			data["Notices"] = p.notices.Pop(ws.ID)
		}
		if ws.Session.IsAuthenticated() {
			data["Authenticated"] = true
			if user, ok := ws.Session.User(); ok {
				data["User"] = user
			}
		}
	}
	return c.Status(status).Render(view, data)
}

func (p *Pages) notify(c *fiber.Ctx, notice service.Notice) {
	if ws, ok := auth.WorkspaceFromContext(c); ok && p.notices != nil {
		p.notices.Push(ws.ID, notice)
	}
}

func workspace(c *fiber.Ctx) (*service.Workspace, error) {
	ws, ok := auth.WorkspaceFromContext(c)
	if !ok {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "browser context not bound")
	}
	return ws, nil
}

func toLogin(c *fiber.Ctx) error {
	return c.Redirect(auth.LoginPath, fiber.StatusSeeOther)
}

// failureStatus picks the status a page is re-rendered with after err.
func failureStatus(err error) int {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest
	}
	if code := client.StatusCode(err); code >= 400 && code < 500 {
		return code
	}
	return fiber.StatusBadGateway
}
