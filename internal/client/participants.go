package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ndis-platform/admin-console/internal/api/dto"
	"github.com/ndis-platform/admin-console/internal/domain"
)

// ListParticipants fetches GET /participants.
func (c *Client) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	var out dto.ParticipantListResponse
	if err := c.do(ctx, http.MethodGet, "/participants", nil, &out); err != nil {
		return nil, err
	}
	if out.Participants == nil {
		out.Participants = []domain.Participant{}
	}
	return out.Participants, nil
}

// CreateParticipant posts to /participants.
func (c *Client) CreateParticipant(ctx context.Context, req dto.ParticipantCreateRequest) (*dto.ParticipantCreatedResponse, error) {
	var out dto.ParticipantCreatedResponse
	if err := c.do(ctx, http.MethodPost, "/participants", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateParticipant sends a partial update to PUT /participants/:id.
func (c *Client) UpdateParticipant(ctx context.Context, id int, req dto.ParticipantUpdateRequest) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodPut, "/participants/"+strconv.Itoa(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
