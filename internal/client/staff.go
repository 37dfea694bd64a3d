package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ndis-platform/admin-console/internal/api/dto"
	"github.com/ndis-platform/admin-console/internal/domain"
)

func staffPath(id int) string {
	return "/staff/" + strconv.Itoa(id)
}

// ListStaff fetches GET /staff.
func (c *Client) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	var out dto.StaffListResponse
	if err := c.do(ctx, http.MethodGet, "/staff", nil, &out); err != nil {
		return nil, err
	}
	if out.Staff == nil {
		out.Staff = []domain.Staff{}
	}
	return out.Staff, nil
}

// CreateStaff posts the add-staff form to /staff.
func (c *Client) CreateStaff(ctx context.Context, req dto.StaffCreateRequest) (*dto.StaffCreatedResponse, error) {
	var out dto.StaffCreatedResponse
	if err := c.do(ctx, http.MethodPost, "/staff", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStaff sends a partial update to PUT /staff/:id.
func (c *Client) UpdateStaff(ctx context.Context, id int, req dto.StaffUpdateRequest) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodPut, staffPath(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStaff calls DELETE /staff/:id.
func (c *Client) DeleteStaff(ctx context.Context, id int) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodDelete, staffPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
