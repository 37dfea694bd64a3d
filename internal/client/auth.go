package client

import (
	"context"
	"net/http"

	"github.com/ndis-platform/admin-console/internal/api/dto"
)

// Login posts credentials to /auth/login. It does not touch the session;
// storing the returned token is the caller's decision.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register posts a new account to /auth/register.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
