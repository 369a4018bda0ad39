package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/repositories"
	"github.com/okandemir/schoolhub/internal/db"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
	"github.com/okandemir/schoolhub/internal/pkg/logger"
)

// gradePoints maps a letter grade to its grade-point value.
var gradePoints = map[string]float64{
	"A": 4.0,
	"B": 3.0,
	"C": 2.0,
	"D": 1.0,
	"E": 0.5,
	"F": 0.0,
}

// ReportService produces and persists per-student report card snapshots.
// Each snapshot is computed and written inside one transaction.
type ReportService struct {
	database          *db.PostgresDB
	studentRepo       *repositories.StudentRepository
	gradeRepo         *repositories.GradeRepository
	attendanceRepo    *repositories.AttendanceRepository
	financeRepo       *repositories.FinanceRepository
	reportRepo        *repositories.ReportRepository
	expectedAnnualFee float64
}

// NewReportService creates a new report service instance
func NewReportService(
	database *db.PostgresDB,
	studentRepo *repositories.StudentRepository,
	gradeRepo *repositories.GradeRepository,
	attendanceRepo *repositories.AttendanceRepository,
	financeRepo *repositories.FinanceRepository,
	reportRepo *repositories.ReportRepository,
	expectedAnnualFee float64,
) *ReportService {
	return &ReportService{
		database:          database,
		studentRepo:       studentRepo,
		gradeRepo:         gradeRepo,
		attendanceRepo:    attendanceRepo,
		financeRepo:       financeRepo,
		reportRepo:        reportRepo,
		expectedAnnualFee: expectedAnnualFee,
	}
}

// gpaFor averages the grade-point values of the given letter grades.
// Ungraded records (empty letter) are excluded from the average, not zeroed.
func gpaFor(letters []string) float64 {
	var sum float64
	var graded int

	for _, letter := range letters {
		points, ok := gradePoints[letter]
		if !ok {
			continue
		}
		sum += points
		graded++
	}

	if graded == 0 {
		return 0
	}

	return round2(sum / float64(graded))
}

// attendancePercentage computes present/total as a percentage rounded to two
// decimals. Zero recorded days yields zero, never a division by zero.
func attendancePercentage(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(present) / float64(total) * 100)
}

// financialStanding compares the paid total against the expected fee.
// Outstanding never goes negative; overpayment still reads as cleared.
func financialStanding(expected, paid float64) (models.FinancialStatus, float64) {
	outstanding := expected - paid
	if outstanding <= 0 {
		return models.FinancialCleared, 0
	}
	return models.FinancialNotCleared, round2(outstanding)
}

// academicYearRange resolves an academic year like "2025/2026" to its date
// span, September 1st through August 31st.
func academicYearRange(academicYear string) (from, to time.Time, err error) {
	parts := strings.Split(academicYear, "/")
	if len(parts) != 2 {
		return from, to, fmt.Errorf("academic year must be of form YYYY/YYYY")
	}

	startYear, err := strconv.Atoi(parts[0])
	if err != nil {
		return from, to, fmt.Errorf("academic year must be of form YYYY/YYYY")
	}
	endYear, err := strconv.Atoi(parts[1])
	if err != nil || endYear != startYear+1 {
		return from, to, fmt.Errorf("academic year must span two consecutive years")
	}

	from = time.Date(startYear, time.September, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(endYear, time.August, 31, 0, 0, 0, 0, time.UTC)
	return from, to, nil
}

// GenerateReport computes and upserts the report snapshot for one student,
// term and academic year. The student load, GPA, attendance and financial
// computations and the final write all run in a single transaction; any
// failure rolls the whole operation back and no partial report is persisted.
func (s *ReportService) GenerateReport(ctx context.Context, req *dto.GenerateReportRequest) (*models.StudentReport, error) {
	term, err := validateTerm(req.Term)
	if err != nil {
		return nil, err
	}

	yearStart, yearEnd, err := academicYearRange(req.AcademicYear)
	if err != nil {
		return nil, apperrors.NewValidationError("academicYear", err.Error())
	}

	var report *models.StudentReport

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := s.studentRepo.GetByIDTx(ctx, tx, req.StudentID); err != nil {
			if errors.Is(err, repositories.ErrStudentNotFound) {
				return apperrors.ErrStudentNotFound
			}
			return err
		}

		letters, err := s.gradeRepo.LetterGradesForTermTx(ctx, tx, req.StudentID, term, req.AcademicYear)
		if err != nil {
			return err
		}

		stats, err := s.attendanceRepo.StatsForStudentTx(ctx, tx, req.StudentID, yearStart, yearEnd)
		if err != nil {
			return err
		}

		paid, err := s.financeRepo.PaidTotalForStudentTx(ctx, tx, req.StudentID)
		if err != nil {
			return err
		}

		status, outstanding := financialStanding(s.expectedAnnualFee, paid)

		report = &models.StudentReport{
			StudentID:            req.StudentID,
			Term:                 term,
			AcademicYear:         req.AcademicYear,
			GPA:                  gpaFor(letters),
			TotalSchoolDays:      stats.TotalDays,
			DaysPresent:          stats.DaysPresent,
			DaysAbsent:           stats.DaysAbsent,
			AttendancePercentage: attendancePercentage(stats.DaysPresent, stats.TotalDays),
			FinancialStatus:      status,
			OutstandingAmount:    outstanding,
		}

		return s.reportRepo.UpsertTx(ctx, tx, report)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		logger.Error().Err(err).Int64("studentId", req.StudentID).Str("term", req.Term).
			Str("academicYear", req.AcademicYear).Msg("Report generation rolled back")
		return nil, apperrors.NewStorageError(err, "error generating student report")
	}

	logger.Info().Int64("studentId", req.StudentID).Str("term", req.Term).
		Str("academicYear", req.AcademicYear).Float64("gpa", report.GPA).
		Msg("Student report generated")

	return report, nil
}

// GetReport retrieves the stored snapshot for one (student, term, year)
func (s *ReportService) GetReport(ctx context.Context, studentID int64, term, academicYear string) (*models.StudentReport, error) {
	t, err := validateTerm(term)
	if err != nil {
		return nil, err
	}

	report, err := s.reportRepo.GetByKey(ctx, studentID, t, academicYear)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, apperrors.NewStorageError(err, "error retrieving student report")
	}

	return report, nil
}

// ListReports retrieves all stored snapshots for a student
func (s *ReportService) ListReports(ctx context.Context, studentID int64) ([]*models.StudentReport, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("studentId", "invalid student ID")
	}

	reports, err := s.reportRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing student reports")
	}

	return reports, nil
}
