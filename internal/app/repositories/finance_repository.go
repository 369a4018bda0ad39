package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/schoolhub/internal/app/models"
)

// Finance error types
var (
	ErrFinanceRecordNotFound = errors.New("finance record not found")
)

// FinanceRepository handles database operations for fee payment records
type FinanceRepository struct {
	db *pgxpool.Pool
}

// NewFinanceRepository creates a new finance repository
func NewFinanceRepository(db *pgxpool.Pool) *FinanceRepository {
	return &FinanceRepository{
		db: db,
	}
}

// Create creates a new finance record
func (r *FinanceRepository) Create(ctx context.Context, record *models.FinanceRecord) error {
	query := `
		INSERT INTO finance_records (student_id, amount, payment_date, status, description, payment_method, receipt_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID,
		record.Amount,
		record.PaymentDate,
		record.Status,
		record.Description,
		record.PaymentMethod,
		record.ReceiptNumber,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// List retrieves finance records filtered by student and status
func (r *FinanceRepository) List(ctx context.Context, studentID int64, status string) ([]*models.FinanceRecord, error) {
	query := `
		SELECT id, student_id, amount, payment_date, status, description,
			payment_method, receipt_number, created_at, updated_at
		FROM finance_records
		WHERE TRUE
	`
	args := []interface{}{}

	if studentID > 0 {
		args = append(args, studentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY payment_date DESC, id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.FinanceRecord
	for rows.Next() {
		var rec models.FinanceRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.StudentID,
			&rec.Amount,
			&rec.PaymentDate,
			&rec.Status,
			&rec.Description,
			&rec.PaymentMethod,
			&rec.ReceiptNumber,
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

// UpdateStatus mutates only the payment status of a record
func (r *FinanceRepository) UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	query := `UPDATE finance_records SET status = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating finance record status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFinanceRecordNotFound
	}

	return nil
}

// PaidTotalForStudentTx sums a student's paid fee records inside a transaction
func (r *FinanceRepository) PaidTotalForStudentTx(ctx context.Context, tx pgx.Tx, studentID int64) (float64, error) {
	var total float64
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM finance_records
		WHERE student_id = $1 AND status = 'PAID'`,
		studentID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing paid fees: %w", err)
	}

	return total, nil
}

// PendingTotal sums all pending fee records. Used by the dashboard.
func (r *FinanceRepository) PendingTotal(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM finance_records WHERE status = 'PENDING'`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing pending fees: %w", err)
	}

	return total, nil
}

// GetByID retrieves a finance record by ID
func (r *FinanceRepository) GetByID(ctx context.Context, id int64) (*models.FinanceRecord, error) {
	query := `
		SELECT id, student_id, amount, payment_date, status, description,
			payment_method, receipt_number, created_at, updated_at
		FROM finance_records
		WHERE id = $1
	`

	var rec models.FinanceRecord
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.StudentID,
		&rec.Amount,
		&rec.PaymentDate,
		&rec.Status,
		&rec.Description,
		&rec.PaymentMethod,
		&rec.ReceiptNumber,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFinanceRecordNotFound
		}
		return nil, fmt.Errorf("error retrieving finance record: %w", err)
	}

	return &rec, nil
}
