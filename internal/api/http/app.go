package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndis-platform/admin-console/internal/api/http/views"
)

// NewApp builds the fiber application with the console views attached.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               name,
		Views:                 views.New(),
		DisableStartupMessage: true,
	})
}
