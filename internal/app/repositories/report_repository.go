package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/schoolhub/internal/app/models"
)

// Report error types
var (
	ErrReportNotFound = errors.New("report not found")
)

// ReportRepository handles database operations for student report snapshots
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

const reportColumns = `
	id, student_id, term, academic_year, gpa, total_school_days, days_present,
	days_absent, attendance_percentage, financial_status, outstanding_amount,
	generated_at, updated_at
`

func scanReport(row pgx.Row) (*models.StudentReport, error) {
	var rep models.StudentReport
	err := row.Scan(
		&rep.ID,
		&rep.StudentID,
		&rep.Term,
		&rep.AcademicYear,
		&rep.GPA,
		&rep.TotalSchoolDays,
		&rep.DaysPresent,
		&rep.DaysAbsent,
		&rep.AttendancePercentage,
		&rep.FinancialStatus,
		&rep.OutstandingAmount,
		&rep.GeneratedAt,
		&rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// UpsertTx inserts or overwrites the report snapshot keyed by
// (student, term, academic year) inside the aggregation transaction.
func (r *ReportRepository) UpsertTx(ctx context.Context, tx pgx.Tx, report *models.StudentReport) error {
	query := `
		INSERT INTO student_reports (
			student_id, term, academic_year, gpa, total_school_days, days_present,
			days_absent, attendance_percentage, financial_status, outstanding_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT ON CONSTRAINT report_student_term_year_key
		DO UPDATE SET gpa = EXCLUDED.gpa,
			total_school_days = EXCLUDED.total_school_days,
			days_present = EXCLUDED.days_present,
			days_absent = EXCLUDED.days_absent,
			attendance_percentage = EXCLUDED.attendance_percentage,
			financial_status = EXCLUDED.financial_status,
			outstanding_amount = EXCLUDED.outstanding_amount,
			updated_at = NOW()
		RETURNING id, generated_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		report.StudentID,
		report.Term,
		report.AcademicYear,
		report.GPA,
		report.TotalSchoolDays,
		report.DaysPresent,
		report.DaysAbsent,
		report.AttendancePercentage,
		report.FinancialStatus,
		report.OutstandingAmount,
	).Scan(&report.ID, &report.GeneratedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting student report: %w", err)
	}

	return nil
}

// GetByKey retrieves the report snapshot for one (student, term, year)
func (r *ReportRepository) GetByKey(ctx context.Context, studentID int64, term models.Term, academicYear string) (*models.StudentReport, error) {
	query := `SELECT ` + reportColumns + `
		FROM student_reports
		WHERE student_id = $1 AND term = $2 AND academic_year = $3`

	report, err := scanReport(r.db.QueryRow(ctx, query, studentID, term, academicYear))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("error retrieving student report: %w", err)
	}

	return report, nil
}

// ListByStudent retrieves all report snapshots for a student
func (r *ReportRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentReport, error) {
	query := `SELECT ` + reportColumns + `
		FROM student_reports
		WHERE student_id = $1
		ORDER BY academic_year, term`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.StudentReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
