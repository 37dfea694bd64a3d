package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ndis-platform/admin-console/internal/service"
	"github.com/ndis-platform/admin-console/internal/session"
	apperrors "github.com/ndis-platform/admin-console/pkg/util"
)

const (
	workspaceKey = "auth_workspace"
	identityKey  = "auth_identity"

	cookieMaxAge = 30 * 24 * 60 * 60
)

// CookieConfig controls the browser context cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// ContextMiddleware binds every request to the workspace of its browser context.
type ContextMiddleware struct {
	workspaces *service.Workspaces
	cookie     CookieConfig
	logger     *zap.Logger
}

// NewContextMiddleware constructs middleware.
func NewContextMiddleware(workspaces *service.Workspaces, cookie CookieConfig, logger *zap.Logger) *ContextMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContextMiddleware{workspaces: workspaces, cookie: cookie, logger: logger}
}

// Handle resolves the browser context cookie, issuing a fresh one when it is
// missing or malformed.
func (m *ContextMiddleware) Handle(c *fiber.Ctx) error {
	id := c.Cookies(m.cookie.Name)
	ws, err := m.workspaces.Get(c.UserContext(), id)
	if errors.Is(err, service.ErrEmptyWorkspaceID) || errors.Is(err, session.ErrInvalidKey) {
		if id != "" {
			m.logger.Debug("replacing malformed browser context cookie")
		}
		id = uuid.NewString()
		ws, err = m.workspaces.Get(c.UserContext(), id)
		if err == nil {
			m.setCookie(c, id)
		}
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	c.Locals(workspaceKey, ws)
	return c.Next()
}

func (m *ContextMiddleware) setCookie(c *fiber.Ctx, id string) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cookie.Name,
		Value:    id,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		Secure:   m.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// WorkspaceFromContext retrieves the workspace bound by ContextMiddleware.
func WorkspaceFromContext(c *fiber.Ctx) (*service.Workspace, bool) {
	val := c.Locals(workspaceKey)
	if val == nil {
		return nil, false
	}
	ws, ok := val.(*service.Workspace)
	return ws, ok
}
