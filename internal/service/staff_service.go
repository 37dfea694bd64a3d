package service

import (
	"context"
	"strings"

	"github.com/ndis-platform/admin-console/internal/api/dto"
	"github.com/ndis-platform/admin-console/internal/domain"
	"github.com/ndis-platform/admin-console/internal/validation"
)

// StaffService validates staff forms and forwards them to the platform API.
type StaffService struct {
	api StaffAPI
}

// NewStaffService constructs the service.
func NewStaffService(api StaffAPI) *StaffService {
	return &StaffService{api: api}
}

// StaffSummary counts staff by status for the dashboard.
type StaffSummary struct {
	Total    int
	Active   int
	Inactive int
	OnLeave  int
}

// List returns every staff record.
func (s *StaffService) List(ctx context.Context) ([]domain.Staff, error) {
	return s.api.ListStaff(ctx)
}

// Summary lists staff and counts them by status.
func (s *StaffService) Summary(ctx context.Context) (StaffSummary, error) {
	list, err := s.api.ListStaff(ctx)
	if err != nil {
		return StaffSummary{}, err
	}
	return Summarize(list), nil
}

// Summarize counts staff by status.
func Summarize(list []domain.Staff) StaffSummary {
	sum := StaffSummary{Total: len(list)}
	for _, st := range list {
		switch st.Status {
		case domain.StaffStatusActive:
			sum.Active++
		case domain.StaffStatusInactive:
			sum.Inactive++
		case domain.StaffStatusOnLeave:
			sum.OnLeave++
		}
	}
	return sum
}

// Create validates the add-staff form before calling the API. A form that
// fails validation never reaches the network.
func (s *StaffService) Create(ctx context.Context, req dto.StaffCreateRequest) (*dto.StaffCreatedResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Position = strings.TrimSpace(req.Position)
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.api.CreateStaff(ctx, req)
}

// Update sends a partial update for staff id.
func (s *StaffService) Update(ctx context.Context, id int, req dto.StaffUpdateRequest) (*dto.MessageResponse, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.api.UpdateStaff(ctx, id, req)
}

// Delete removes staff id.
func (s *StaffService) Delete(ctx context.Context, id int) error {
	_, err := s.api.DeleteStaff(ctx, id)
	return err
}
