package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ndis-platform/admin-console/internal/api/http/handlers"
	"github.com/ndis-platform/admin-console/internal/auth"
	"github.com/ndis-platform/admin-console/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Dashboard    *handlers.DashboardHandler
	Staff        *handlers.StaffHandler
	Participants *handlers.ParticipantsHandler
	Context      *auth.ContextMiddleware
	Gatherer     prometheus.Gatherer
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	console := app.Group("", cfg.Context.Handle)
	console.Get("/login", cfg.Auth.ShowLogin)
	console.Post("/login", cfg.Auth.Login)
	console.Post("/logout", cfg.Auth.Logout)

	protected := console.Group("", auth.RequireSession())
	protected.Get("/", cfg.Dashboard.Show)
	protected.Get("/staff", cfg.Staff.List)
	protected.Get("/participants", cfg.Participants.List)
	protected.Get("/participants/new", cfg.Participants.New)
	protected.Post("/participants", cfg.Participants.Create)

	admin := auth.RequireRole(domain.RoleAdmin)
	protected.Get("/staff/new", admin, cfg.Staff.New)
	protected.Post("/staff", admin, cfg.Staff.Create)
	protected.Post("/staff/:id/delete", admin, cfg.Staff.Delete)
}
