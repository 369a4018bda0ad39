package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/schoolhub/internal/app/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// UpsertTx inserts or overwrites one attendance entry inside a transaction.
// The key is (date, student, subject); re-submission replaces status and notes.
func (r *AttendanceRepository) UpsertTx(ctx context.Context, tx pgx.Tx, record *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (student_id, attendance_date, subject, status, notes, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT ON CONSTRAINT attendance_day_student_subject_key
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes,
			recorded_by = EXCLUDED.recorded_by, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		record.StudentID,
		record.Date,
		record.Subject,
		record.Status,
		record.Notes,
		record.RecordedBy,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting attendance record: %w", err)
	}

	return nil
}

// List retrieves attendance records filtered by student, date and subject
func (r *AttendanceRepository) List(ctx context.Context, studentID int64, date *time.Time, subject string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, attendance_date, subject, status, notes, recorded_by, created_at, updated_at
		FROM attendance_records
		WHERE TRUE
	`
	args := []interface{}{}

	if studentID > 0 {
		args = append(args, studentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if date != nil {
		args = append(args, *date)
		query += fmt.Sprintf(" AND attendance_date = $%d", len(args))
	}
	if subject != "" {
		args = append(args, subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}

	query += " ORDER BY attendance_date DESC, student_id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.StudentID,
			&rec.Date,
			&rec.Subject,
			&rec.Status,
			&rec.Notes,
			&rec.RecordedBy,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// AttendanceStats holds aggregate counts for one student over a date range.
type AttendanceStats struct {
	TotalDays   int
	DaysPresent int
	DaysAbsent  int
}

// StatsForStudentTx computes attendance counts for a student between two
// dates inside a transaction. Present and Late both count as attendance.
func (r *AttendanceRepository) StatsForStudentTx(ctx context.Context, tx pgx.Tx, studentID int64, from, to time.Time) (*AttendanceStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status IN ('PRESENT', 'LATE')),
			COUNT(*) FILTER (WHERE status = 'ABSENT')
		FROM attendance_records
		WHERE student_id = $1 AND attendance_date BETWEEN $2 AND $3
	`

	var stats AttendanceStats
	err := tx.QueryRow(ctx, query, studentID, from, to).Scan(
		&stats.TotalDays,
		&stats.DaysPresent,
		&stats.DaysAbsent,
	)
	if err != nil {
		return nil, fmt.Errorf("error computing attendance stats: %w", err)
	}

	return &stats, nil
}

// TodayCounts returns how many entries were recorded today and how many of
// them count as present. Used by the dashboard.
func (r *AttendanceRepository) TodayCounts(ctx context.Context) (recorded, present int64, err error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status IN ('PRESENT', 'LATE'))
		FROM attendance_records
		WHERE attendance_date = CURRENT_DATE
	`

	err = r.db.QueryRow(ctx, query).Scan(&recorded, &present)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting today's attendance: %w", err)
	}

	return recorded, present, nil
}
