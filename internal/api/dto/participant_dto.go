package dto

import "github.com/ndis-platform/admin-console/internal/domain"

// ParticipantCreateRequest payload for POST /participants.
type ParticipantCreateRequest struct {
	FirstName        string `json:"first_name" form:"first_name" validate:"required"`
	LastName         string `json:"last_name" form:"last_name" validate:"required"`
	Email            string `json:"email,omitempty" form:"email" validate:"omitempty,email"`
	Phone            string `json:"phone,omitempty" form:"phone"`
	Address          string `json:"address,omitempty" form:"address"`
	EmergencyContact string `json:"emergency_contact,omitempty" form:"emergency_contact"`
	NDISNumber       string `json:"ndis_number,omitempty" form:"ndis_number"`
}

// ParticipantUpdateRequest carries partial updates for PUT /participants/:id.
type ParticipantUpdateRequest struct {
	FirstName        *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName         *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	NDISNumber       *string `json:"ndis_number,omitempty"`
	Status           *string `json:"status,omitempty"`
}

// ParticipantListResponse wraps GET /participants.
type ParticipantListResponse struct {
	Participants []domain.Participant `json:"participants"`
}

// ParticipantCreatedResponse is returned by POST /participants.
type ParticipantCreatedResponse struct {
	Message       string `json:"message"`
	ParticipantID ID     `json:"participant_id"`
}
