package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/schoolhub/internal/app/models"
)

// Staff error types
var (
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrStaffEmailConflict = errors.New("staff member with this email already exists")
)

// StaffRepository handles database operations for staff profiles
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

const staffColumns = `
	id, first_name, last_name, position, email, phone, subjects,
	is_active, created_at, updated_at
`

func scanStaff(row pgx.Row) (*models.StaffMember, error) {
	var s models.StaffMember
	err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.Position,
		&s.Email,
		&s.Phone,
		&s.Subjects,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create creates a new staff profile
func (r *StaffRepository) Create(ctx context.Context, staff *models.StaffMember) error {
	query := `
		INSERT INTO staff (first_name, last_name, position, email, phone, subjects)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_active, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		staff.FirstName,
		staff.LastName,
		staff.Position,
		staff.Email,
		staff.Phone,
		staff.Subjects,
	).Scan(&staff.ID, &staff.IsActive, &staff.CreatedAt, &staff.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an active staff member by ID
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1 AND is_active`

	staff, err := scanStaff(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff member: %w", err)
	}

	return staff, nil
}

// List retrieves all staff members, deactivated ones included. The active
// flag is kept in the result for admin display.
func (r *StaffRepository) List(ctx context.Context) ([]*models.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.StaffMember
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, staff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// ExistsByEmail checks if a staff email is already registered
func (r *StaffRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM staff WHERE email = $1)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking staff email: %w", err)
	}

	return exists, nil
}

// Update overwrites the mutable fields of an existing active staff member
func (r *StaffRepository) Update(ctx context.Context, staff *models.StaffMember) error {
	query := `
		UPDATE staff
		SET first_name = $1, last_name = $2, position = $3, email = $4,
			phone = $5, subjects = $6, updated_at = NOW()
		WHERE id = $7 AND is_active
	`

	cmdTag, err := r.db.Exec(ctx, query,
		staff.FirstName,
		staff.LastName,
		staff.Position,
		staff.Email,
		staff.Phone,
		staff.Subjects,
		staff.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating staff member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStaffNotFound
	}

	return nil
}

// SoftDelete marks a staff member inactive
func (r *StaffRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE staff SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting staff member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStaffNotFound
	}

	return nil
}

// CountActive counts active staff members
func (r *StaffRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting staff: %w", err)
	}

	return count, nil
}
