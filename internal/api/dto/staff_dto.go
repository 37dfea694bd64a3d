package dto

import "github.com/ndis-platform/admin-console/internal/domain"

// StaffCreateRequest is the add-staff form payload for POST /staff.
type StaffCreateRequest struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required"`
	LastName  string `json:"last_name" form:"last_name" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required"`
	Phone     string `json:"phone,omitempty" form:"phone"`
	Position  string `json:"position,omitempty" form:"position" validate:"omitempty,staff_position"`
}

// StaffUpdateRequest carries partial updates for PUT /staff/:id.
type StaffUpdateRequest struct {
	FirstName *string             `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName  *string             `json:"last_name,omitempty" validate:"omitempty,min=1"`
	Phone     *string             `json:"phone,omitempty"`
	Position  *string             `json:"position,omitempty" validate:"omitempty,staff_position"`
	Status    *domain.StaffStatus `json:"status,omitempty" validate:"omitempty,staff_status"`
}

// StaffListResponse wraps GET /staff.
type StaffListResponse struct {
	Staff []domain.Staff `json:"staff"`
}

// StaffCreatedResponse is returned by POST /staff.
type StaffCreatedResponse struct {
	Message string `json:"message"`
	StaffID ID     `json:"staff_id"`
}
