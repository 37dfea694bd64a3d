package service

import (
	"context"
	"strings"

	"github.com/ndis-platform/admin-console/internal/api/dto"
	"github.com/ndis-platform/admin-console/internal/domain"
	"github.com/ndis-platform/admin-console/internal/validation"
)

// ParticipantService validates participant forms and forwards them to the platform API.
type ParticipantService struct {
	api ParticipantAPI
}

// NewParticipantService constructs the service.
func NewParticipantService(api ParticipantAPI) *ParticipantService {
	return &ParticipantService{api: api}
}

// List returns every participant.
func (s *ParticipantService) List(ctx context.Context) ([]domain.Participant, error) {
	return s.api.ListParticipants(ctx)
}

// Create validates and submits a new participant.
func (s *ParticipantService) Create(ctx context.Context, req dto.ParticipantCreateRequest) (*dto.ParticipantCreatedResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.api.CreateParticipant(ctx, req)
}

// Update sends a partial update for participant id.
func (s *ParticipantService) Update(ctx context.Context, id int, req dto.ParticipantUpdateRequest) (*dto.MessageResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.api.UpdateParticipant(ctx, id, req)
}
