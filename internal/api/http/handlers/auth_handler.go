package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndis-platform/admin-console/internal/api/dto"
	apperrors "github.com/ndis-platform/admin-console/pkg/util"
)

// AuthHandler serves the login view and the logout action.
type AuthHandler struct {
	pages *Pages
}

// NewAuthHandler constructs handler.
func NewAuthHandler(pages *Pages) *AuthHandler {
	return &AuthHandler{pages: pages}
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	if ws.Session.IsAuthenticated() {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return h.pages.render(c, fiber.StatusOK, viewLogin, fiber.Map{"Title": "Login"})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid login form")
	}

	if _, err := ws.Auth.Login(c.UserContext(), req.Email, req.Password); err != nil {
		return h.pages.render(c, failureStatus(err), viewLogin, fiber.Map{
			"Title": "Login",
			"Email": req.Email,
			"Error": apperrors.UserMessage(err, "Login failed"),
		})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	// The session is gone from memory even when storage cleanup fails.
	_ = ws.Auth.Logout(c.UserContext())
	return toLogin(c)
}
