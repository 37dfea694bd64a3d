package session

import (
	"fmt"
	"strconv"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/ndis-platform/admin-console/internal/domain"
)

var unverifiedParser = jwt.NewParser()

// DecodeIdentity reads the email, role and subject claims from a JWT without
// checking its signature or expiry. It reports false when the token is not a
// JWT or carries no email claim.
func DecodeIdentity(token string) (*domain.Identity, bool) {
	if token == "" {
		return nil, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := unverifiedParser.ParseUnverified(token, claims); err != nil {
		return nil, false
	}

	email, _ := claims["email"].(string)
	if strings.TrimSpace(email) == "" {
		return nil, false
	}
	role, _ := claims["role"].(string)

	return &domain.Identity{
		ID:    subjectString(claims["sub"]),
		Email: email,
		Role:  domain.Role(role),
	}, true
}

func subjectString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
