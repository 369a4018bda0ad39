package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/repositories"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
)

// GradeService handles grade record operations
type GradeService struct {
	gradeRepo   *repositories.GradeRepository
	studentRepo *repositories.StudentRepository
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo *repositories.GradeRepository, studentRepo *repositories.StudentRepository) *GradeService {
	return &GradeService{
		gradeRepo:   gradeRepo,
		studentRepo: studentRepo,
	}
}

// round2 rounds to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// computeTotalMarks averages all sub-scores across components, rounded to
// two decimals. An empty record totals zero.
func computeTotalMarks(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	var sum float64
	for _, score := range scores {
		sum += score
	}

	return round2(sum / float64(len(scores)))
}

// letterGradeFor maps total marks to a letter grade.
func letterGradeFor(totalMarks float64) string {
	switch {
	case totalMarks >= 90:
		return "A"
	case totalMarks >= 80:
		return "B"
	case totalMarks >= 70:
		return "C"
	case totalMarks >= 60:
		return "D"
	case totalMarks >= 50:
		return "E"
	default:
		return "F"
	}
}

// validateTerm parses a submitted term value, rejecting anything outside
// the three school terms.
func validateTerm(value string) (models.Term, error) {
	term := models.Term(value)
	if !term.Valid() {
		return "", apperrors.NewValidationError("term", "term must be TERM_1, TERM_2 or TERM_3")
	}
	return term, nil
}

// SaveGrade creates or overwrites the grade record for
// (student, subject, term, academic year), recomputing the total and letter.
func (s *GradeService) SaveGrade(ctx context.Context, req *dto.SaveGradeRequest) (*models.GradeRecord, error) {
	term, err := validateTerm(req.Term)
	if err != nil {
		return nil, err
	}

	// The student must exist and be active before any grades are stored.
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, studentLookupError(err)
	}

	grade := &models.GradeRecord{
		StudentID:     req.StudentID,
		Subject:       req.Subject,
		Term:          term,
		AcademicYear:  req.AcademicYear,
		WeeklyTests:   emptyIfNil(req.WeeklyTests),
		Projects:      emptyIfNil(req.Projects),
		Assignments:   emptyIfNil(req.Assignments),
		TakeHomeTests: emptyIfNil(req.TakeHomeTests),
		OpenBookTests: emptyIfNil(req.OpenBookTests),
		EndOfTermTest: emptyIfNil(req.EndOfTermTest),
	}
	grade.TotalMarks = computeTotalMarks(grade.ComponentScores())
	if len(grade.ComponentScores()) > 0 {
		grade.LetterGrade = letterGradeFor(grade.TotalMarks)
	}

	if err := s.gradeRepo.Upsert(ctx, grade); err != nil {
		return nil, apperrors.NewStorageError(err, "error saving grade record")
	}

	return grade, nil
}

func emptyIfNil(scores []float64) []float64 {
	if scores == nil {
		return []float64{}
	}
	return scores
}

// GetGradeByID retrieves a grade record by ID
func (s *GradeService) GetGradeByID(ctx context.Context, id int64) (*models.GradeRecord, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "invalid grade record ID")
	}

	grade, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGradeRecordNotFound) {
			return nil, apperrors.NewResourceNotFoundError("grade record not found")
		}
		return nil, apperrors.NewStorageError(err, "error retrieving grade record")
	}

	return grade, nil
}

// ListGrades retrieves grade records matching the filter
func (s *GradeService) ListGrades(ctx context.Context, filter *dto.GradeListFilter) ([]*models.GradeRecord, error) {
	grades, err := s.gradeRepo.List(ctx, filter.StudentID, filter.Subject, filter.Term, filter.AcademicYear)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grade records: %w", err)
	}

	return grades, nil
}
