package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ndis-platform/admin-console/internal/domain"
)

// LoginRequest payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterRequest payload for POST /auth/register.
type RegisterRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     domain.Role `json:"role" validate:"required,account_role"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// UserPayload is the user object embedded in auth responses.
type UserPayload struct {
	ID    ID          `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// Identity projects the payload onto a domain identity.
func (u UserPayload) Identity() *domain.Identity {
	return &domain.Identity{ID: string(u.ID), Email: u.Email, Role: u.Role}
}

// MessageResponse is the acknowledgement shape used by register, update and delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ID accepts either a JSON number or string identifier.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(strings.TrimSpace(n.String()))
	return nil
}
