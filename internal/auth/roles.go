package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndis-platform/admin-console/internal/domain"
	apperrors "github.com/ndis-platform/admin-console/pkg/util"
)

// LoginPath is where anonymous browsers are sent.
const LoginPath = "/login"

// RequireSession redirects anonymous browser contexts to the login page.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ws, ok := WorkspaceFromContext(c)
		if !ok || !ws.Session.IsAuthenticated() {
			return c.Redirect(LoginPath, fiber.StatusSeeOther)
		}
		if user, ok := ws.Session.User(); ok {
			c.Locals(identityKey, user)
		}
		return c.Next()
	}
}

// RequireRole rejects callers whose token names a role outside allowed. Tokens
// without readable claims pass through and the backend decides.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		user, ok := IdentityFromContext(c)
		if !ok || user.Role == "" || len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[user.Role]; !exists {
			return apperrors.NewForbidden("Insufficient permissions")
		}
		return c.Next()
	}
}

// IdentityFromContext returns the identity decoded by RequireSession.
func IdentityFromContext(c *fiber.Ctx) (*domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.Identity)
	return user, ok && user != nil
}
