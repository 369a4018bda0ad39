package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/repositories"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
	"github.com/okandemir/schoolhub/internal/pkg/dberrors"
)

// StaffService handles staff profile operations
type StaffService struct {
	staffRepo *repositories.StaffRepository
}

// NewStaffService creates a new staff service instance
func NewStaffService(staffRepo *repositories.StaffRepository) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
	}
}

// CreateStaff validates and persists a new staff profile
func (s *StaffService) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*models.StaffMember, error) {
	for _, f := range []struct {
		field string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"position", req.Position},
		{"email", req.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, apperrors.NewValidationError(f.field, f.field+" is required")
		}
	}

	exists, err := s.staffRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking staff email: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("staff member with this email already exists")
	}

	staff := &models.StaffMember{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
		Email:     req.Email,
		Phone:     req.Phone,
		Subjects:  req.Subjects,
	}
	if staff.Subjects == nil {
		staff.Subjects = []string{}
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "staff_email_key") {
			return nil, apperrors.NewConflictError("staff member with this email already exists")
		}
		return nil, apperrors.NewStorageError(err, "error creating staff member")
	}

	return staff, nil
}

// GetStaffByID retrieves an active staff member by ID
func (s *StaffService) GetStaffByID(ctx context.Context, id int64) (*models.StaffMember, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "invalid staff ID")
	}

	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStaffNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff member: %w", err)
	}

	return staff, nil
}

// ListStaff retrieves all staff members, deactivated ones included
func (s *StaffService) ListStaff(ctx context.Context) ([]*models.StaffMember, error) {
	members, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving staff: %w", err)
	}

	return members, nil
}

// UpdateStaff applies the non-nil fields of a partial update
func (s *StaffService) UpdateStaff(ctx context.Context, id int64, req *dto.UpdateStaffRequest) (*models.StaffMember, error) {
	staff, err := s.GetStaffByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		staff.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		staff.LastName = *req.LastName
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Subjects != nil {
		staff.Subjects = *req.Subjects
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		if errors.Is(err, repositories.ErrStaffNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "staff_email_key") {
			return nil, apperrors.NewConflictError("staff member with this email already exists")
		}
		return nil, apperrors.NewStorageError(err, "error updating staff member")
	}

	return staff, nil
}

// DeleteStaff marks a staff member inactive
func (s *StaffService) DeleteStaff(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("id", "invalid staff ID")
	}

	err := s.staffRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStaffNotFound) {
			return apperrors.ErrStaffNotFound
		}
		return apperrors.NewStorageError(err, "error deleting staff member")
	}

	return nil
}
