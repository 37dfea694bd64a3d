package service

import (
	"context"

	"github.com/ndis-platform/admin-console/internal/api/dto"
	"github.com/ndis-platform/admin-console/internal/domain"
)

// AuthAPI is the slice of the platform client used for authentication.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.MessageResponse, error)
}

// StaffAPI is the slice of the platform client used for staff records.
type StaffAPI interface {
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	CreateStaff(ctx context.Context, req dto.StaffCreateRequest) (*dto.StaffCreatedResponse, error)
	UpdateStaff(ctx context.Context, id int, req dto.StaffUpdateRequest) (*dto.MessageResponse, error)
	DeleteStaff(ctx context.Context, id int) (*dto.MessageResponse, error)
}

// ParticipantAPI is the slice of the platform client used for participants.
type ParticipantAPI interface {
	ListParticipants(ctx context.Context) ([]domain.Participant, error)
	CreateParticipant(ctx context.Context, req dto.ParticipantCreateRequest) (*dto.ParticipantCreatedResponse, error)
	UpdateParticipant(ctx context.Context, id int, req dto.ParticipantUpdateRequest) (*dto.MessageResponse, error)
}
