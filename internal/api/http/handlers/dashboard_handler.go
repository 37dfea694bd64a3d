package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ndis-platform/admin-console/internal/client"
)

// DashboardHandler serves the landing page.
type DashboardHandler struct {
	pages  *Pages
	logger *zap.Logger
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(pages *Pages, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{pages: pages, logger: logger}
}

// Show handles GET /. The staff summary is optional; a failed lookup only
// hides it.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	ws, err := workspace(c)
	if err != nil {
		return err
	}
	data := fiber.Map{"Title": "Dashboard"}
	summary, err := ws.Staff.Summary(c.UserContext())
	switch {
	case client.IsUnauthorized(err):
		return toLogin(c)
	case err != nil:
		h.logger.Warn("staff summary unavailable", zap.Error(err))
	default:
		data["Summary"] = &summary
	}
	return h.pages.render(c, fiber.StatusOK, viewDashboard, data)
}
