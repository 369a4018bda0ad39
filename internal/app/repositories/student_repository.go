package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/schoolhub/internal/app/models"
)

// Student error types
var (
	ErrStudentNotFound            = errors.New("student not found")
	ErrStudentNumberAlreadyExists = errors.New("student number already exists")
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	id, student_number, first_name, last_name, grade_level, class_section,
	date_of_birth, gender, address, guardian_name, guardian_phone, subjects,
	is_active, created_at, updated_at
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.StudentNumber,
		&s.FirstName,
		&s.LastName,
		&s.GradeLevel,
		&s.ClassSection,
		&s.DateOfBirth,
		&s.Gender,
		&s.Address,
		&s.GuardianName,
		&s.GuardianPhone,
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

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			student_number, first_name, last_name, grade_level, class_section,
			date_of_birth, gender, address, guardian_name, guardian_phone, subjects
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, is_active, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentNumber,
		student.FirstName,
		student.LastName,
		student.GradeLevel,
		student.ClassSection,
		student.DateOfBirth,
		student.Gender,
		student.Address,
		student.GuardianName,
		student.GuardianPhone,
		student.Subjects,
	).Scan(&student.ID, &student.IsActive, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an active student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND is_active`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByIDTx retrieves an active student by ID within a transaction
func (r *StudentRepository) GetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND is_active`

	student, err := scanStudent(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// List retrieves active students, optionally filtered by grade level,
// class section and a name/number search term.
func (r *StudentRepository) List(ctx context.Context, gradeLevel, classSection, search string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE is_active`
	args := []interface{}{}

	if gradeLevel != "" {
		args = append(args, gradeLevel)
		query += fmt.Sprintf(" AND grade_level = $%d", len(args))
	}
	if classSection != "" {
		args = append(args, classSection)
		query += fmt.Sprintf(" AND class_section = $%d", len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR student_number ILIKE $%d)", n, n, n)
	}

	query += " ORDER BY last_name, first_name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update overwrites the mutable fields of an existing active student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, grade_level = $3, class_section = $4,
			date_of_birth = $5, gender = $6, address = $7, guardian_name = $8,
			guardian_phone = $9, subjects = $10, updated_at = NOW()
		WHERE id = $11 AND is_active
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName,
		student.LastName,
		student.GradeLevel,
		student.ClassSection,
		student.DateOfBirth,
		student.Gender,
		student.Address,
		student.GuardianName,
		student.GuardianPhone,
		student.Subjects,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// SoftDelete marks a student inactive; rows are never removed
func (r *StudentRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE students SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// ExistsByStudentNumber checks if a student number is already taken
func (r *StudentRepository) ExistsByStudentNumber(ctx context.Context, studentNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE student_number = $1)`,
		studentNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student number: %w", err)
	}

	return exists, nil
}

// CountByNumberPrefix counts students whose number starts with the given prefix.
// Used for sequence generation; inactive students keep their numbers reserved.
func (r *StudentRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM students WHERE student_number LIKE $1`,
		prefix+"%").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students by prefix: %w", err)
	}

	return count, nil
}

// CountActive counts active students
func (r *StudentRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

// CountPerGradeLevel returns active student counts keyed by grade level
func (r *StudentRepository) CountPerGradeLevel(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT grade_level, COUNT(*) FROM students WHERE is_active GROUP BY grade_level`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var grade string
		var count int64
		if err := rows.Scan(&grade, &count); err != nil {
			return nil, err
		}
		counts[grade] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
