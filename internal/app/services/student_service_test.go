package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/repositories"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
)

func validStudentRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		FirstName:    "Amina",
		LastName:     "Diallo",
		GradeLevel:   "JSS2",
		ClassSection: "B",
		DateOfBirth:  "2014-03-21",
		Gender:       "F",
		Address:      "12 School Road",
	}
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dto.CreateStudentRequest)
		wantField string
	}{
		{
			name:   "complete request passes",
			mutate: func(r *dto.CreateStudentRequest) {},
		},
		{
			name:      "missing first name",
			mutate:    func(r *dto.CreateStudentRequest) { r.FirstName = "" },
			wantField: "firstName",
		},
		{
			name:      "whitespace-only last name is empty",
			mutate:    func(r *dto.CreateStudentRequest) { r.LastName = "   " },
			wantField: "lastName",
		},
		{
			name:      "missing grade level",
			mutate:    func(r *dto.CreateStudentRequest) { r.GradeLevel = "" },
			wantField: "gradeLevel",
		},
		{
			name:      "missing class section",
			mutate:    func(r *dto.CreateStudentRequest) { r.ClassSection = "" },
			wantField: "classSection",
		},
		{
			name:      "missing date of birth",
			mutate:    func(r *dto.CreateStudentRequest) { r.DateOfBirth = "" },
			wantField: "dateOfBirth",
		},
		{
			name:      "missing gender",
			mutate:    func(r *dto.CreateStudentRequest) { r.Gender = "" },
			wantField: "gender",
		},
		{
			name:      "missing address",
			mutate:    func(r *dto.CreateStudentRequest) { r.Address = "" },
			wantField: "address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStudentRequest()
			tt.mutate(req)

			err := validateCreate(req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("validateCreate() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("validateCreate() expected error, got nil")
			}
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("validateCreate() error = %v, want validation failure", err)
			}

			var customErr *apperrors.CustomError
			if !errors.As(err, &customErr) {
				t.Fatalf("validateCreate() error type = %T, want *apperrors.CustomError", err)
			}
			if field, _ := customErr.Details["field"].(string); field != tt.wantField {
				t.Errorf("validateCreate() failed field = %q, want %q", field, tt.wantField)
			}
		})
	}
}

func TestFormatStudentNumber(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		year   int
		seq    int64
		want   string
	}{
		{
			name:   "sequence is zero-padded to three digits",
			prefix: "STU",
			year:   2026,
			seq:    1,
			want:   "STU2026001",
		},
		{
			name:   "two-digit sequence",
			prefix: "STU",
			year:   2026,
			seq:    42,
			want:   "STU2026042",
		},
		{
			name:   "sequence beyond three digits is not truncated",
			prefix: "STU",
			year:   2026,
			seq:    1234,
			want:   "STU20261234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatStudentNumber(tt.prefix, tt.year, tt.seq); got != tt.want {
				t.Errorf("formatStudentNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStudentLookupError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantNotFound bool
	}{
		{
			name:         "missing student stays not-found",
			err:          repositories.ErrStudentNotFound,
			wantNotFound: true,
		},
		{
			name:         "connection failure becomes a storage error",
			err:          errors.New("connection refused"),
			wantNotFound: false,
		},
		{
			name:         "wrapped repository error becomes a storage error",
			err:          fmt.Errorf("error retrieving student: %w", errors.New("timeout")),
			wantNotFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := studentLookupError(tt.err)
			if gotNotFound := errors.Is(got, apperrors.ErrStudentNotFound); gotNotFound != tt.wantNotFound {
				t.Fatalf("errors.Is(got, ErrStudentNotFound) = %v, want %v", gotNotFound, tt.wantNotFound)
			}
			if !tt.wantNotFound && !errors.Is(got, apperrors.ErrStorage) {
				t.Errorf("studentLookupError(%v) = %v, want a storage error", tt.err, got)
			}
		})
	}
}
