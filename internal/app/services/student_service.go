package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/repositories"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
	"github.com/okandemir/schoolhub/internal/pkg/dberrors"
)

const dateLayout = "2006-01-02"

// StudentService handles student record operations
type StudentService struct {
	studentRepo         *repositories.StudentRepository
	studentNumberPrefix string
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, studentNumberPrefix string) *StudentService {
	return &StudentService{
		studentRepo:         studentRepo,
		studentNumberPrefix: studentNumberPrefix,
	}
}

// validateCreate checks the required student fields before any persistence call
func validateCreate(req *dto.CreateStudentRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"gradeLevel", req.GradeLevel},
		{"classSection", req.ClassSection},
		{"dateOfBirth", req.DateOfBirth},
		{"gender", req.Gender},
		{"address", req.Address},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.NewValidationError(f.field, f.field+" is required")
		}
	}

	return nil
}

// formatStudentNumber builds a student number of form <PREFIX><YEAR><seq>,
// with the sequence zero-padded to 3 digits.
func formatStudentNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s%d%03d", prefix, year, seq)
}

// generateStudentNumber derives the next number for the current year from the
// count of existing students with that year prefix. The count and the insert
// are not atomic; a concurrent creation can collide and surfaces as a
// conflict on the unique constraint.
func (s *StudentService) generateStudentNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("%s%d", s.studentNumberPrefix, year)

	count, err := s.studentRepo.CountByNumberPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("error generating student number: %w", err)
	}

	return formatStudentNumber(s.studentNumberPrefix, year, count+1), nil
}

// CreateStudent validates and persists a new student record
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	dateOfBirth, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("dateOfBirth", "dateOfBirth must be in YYYY-MM-DD format")
	}

	studentNumber := strings.TrimSpace(req.StudentNumber)
	if studentNumber == "" {
		studentNumber, err = s.generateStudentNumber(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		exists, err := s.studentRepo.ExistsByStudentNumber(ctx, studentNumber)
		if err != nil {
			return nil, fmt.Errorf("error checking student number: %w", err)
		}
		if exists {
			return nil, apperrors.NewConflictError("student number already exists")
		}
	}

	student := &models.Student{
		StudentNumber: studentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		GradeLevel:    req.GradeLevel,
		ClassSection:  req.ClassSection,
		DateOfBirth:   dateOfBirth,
		Gender:        req.Gender,
		Address:       req.Address,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		Subjects:      req.Subjects,
	}
	if student.Subjects == nil {
		student.Subjects = []string{}
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		// The pre-check cannot see a concurrent insert; the unique
		// constraint is the final arbiter.
		if dberrors.IsDuplicateConstraintError(err, "students_student_number_key") {
			return nil, apperrors.NewConflictError("student number already exists")
		}
		return nil, apperrors.NewStorageError(err, "error creating student")
	}

	return student, nil
}

// GetStudentByID retrieves an active student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "invalid student ID")
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, studentLookupError(err)
	}

	return student, nil
}

// studentLookupError maps a student repository lookup failure to the service
// error taxonomy. Only a genuinely missing student becomes not-found;
// anything else is reported as a storage failure.
func studentLookupError(err error) error {
	if errors.Is(err, repositories.ErrStudentNotFound) {
		return apperrors.ErrStudentNotFound
	}
	return apperrors.NewStorageError(err, "error retrieving student")
}

// ListStudents retrieves active students matching the filter
func (s *StudentService) ListStudents(ctx context.Context, filter *dto.StudentListFilter) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx, filter.GradeLevel, filter.ClassSection, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	return students, nil
}

// UpdateStudent applies the non-nil fields of a partial update
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.GradeLevel != nil {
		student.GradeLevel = *req.GradeLevel
	}
	if req.ClassSection != nil {
		student.ClassSection = *req.ClassSection
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("dateOfBirth", "dateOfBirth must be in YYYY-MM-DD format")
		}
		student.DateOfBirth = dateOfBirth
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.GuardianName != nil {
		student.GuardianName = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		student.GuardianPhone = *req.GuardianPhone
	}
	if req.Subjects != nil {
		student.Subjects = *req.Subjects
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.NewStorageError(err, "error updating student")
	}

	return student, nil
}

// DeleteStudent marks a student inactive
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("id", "invalid student ID")
	}

	err := s.studentRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return apperrors.NewStorageError(err, "error deleting student")
	}

	return nil
}

// SaveStudent dispatches the form-style payload: no id creates, an id updates.
func (s *StudentService) SaveStudent(ctx context.Context, req *dto.SaveStudentRequest) (*models.Student, error) {
	if req.ID == nil {
		return s.CreateStudent(ctx, &dto.CreateStudentRequest{
			StudentNumber: req.StudentNumber,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			GradeLevel:    req.GradeLevel,
			ClassSection:  req.ClassSection,
			DateOfBirth:   req.DateOfBirth,
			Gender:        req.Gender,
			Address:       req.Address,
			GuardianName:  req.GuardianName,
			GuardianPhone: req.GuardianPhone,
			Subjects:      req.Subjects,
		})
	}

	update := &dto.UpdateStudentRequest{}
	if req.FirstName != "" {
		update.FirstName = &req.FirstName
	}
	if req.LastName != "" {
		update.LastName = &req.LastName
	}
	if req.GradeLevel != "" {
		update.GradeLevel = &req.GradeLevel
	}
	if req.ClassSection != "" {
		update.ClassSection = &req.ClassSection
	}
	if req.DateOfBirth != "" {
		update.DateOfBirth = &req.DateOfBirth
	}
	if req.Gender != "" {
		update.Gender = &req.Gender
	}
	if req.Address != "" {
		update.Address = &req.Address
	}
	if req.GuardianName != "" {
		update.GuardianName = &req.GuardianName
	}
	if req.GuardianPhone != "" {
		update.GuardianPhone = &req.GuardianPhone
	}
	if req.Subjects != nil {
		update.Subjects = &req.Subjects
	}

	return s.UpdateStudent(ctx, *req.ID, update)
}
