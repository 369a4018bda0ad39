package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/schoolhub/internal/app/models"
)

// Grade error types
var (
	ErrGradeRecordNotFound = errors.New("grade record not found")
)

// GradeRepository handles database operations for grade records
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

const gradeColumns = `
	id, student_id, subject, term, academic_year, weekly_tests, projects,
	assignments, take_home_tests, open_book_tests, end_of_term_tests,
	total_marks, letter_grade, created_at, updated_at
`

func scanGrade(row pgx.Row) (*models.GradeRecord, error) {
	var g models.GradeRecord
	err := row.Scan(
		&g.ID,
		&g.StudentID,
		&g.Subject,
		&g.Term,
		&g.AcademicYear,
		&g.WeeklyTests,
		&g.Projects,
		&g.Assignments,
		&g.TakeHomeTests,
		&g.OpenBookTests,
		&g.EndOfTermTest,
		&g.TotalMarks,
		&g.LetterGrade,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Upsert inserts or overwrites the grade record keyed by
// (student, subject, term, academic year).
func (r *GradeRepository) Upsert(ctx context.Context, grade *models.GradeRecord) error {
	query := `
		INSERT INTO grade_records (
			student_id, subject, term, academic_year, weekly_tests, projects,
			assignments, take_home_tests, open_book_tests, end_of_term_tests,
			total_marks, letter_grade
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT ON CONSTRAINT grade_student_subject_term_year_key
		DO UPDATE SET weekly_tests = EXCLUDED.weekly_tests,
			projects = EXCLUDED.projects,
			assignments = EXCLUDED.assignments,
			take_home_tests = EXCLUDED.take_home_tests,
			open_book_tests = EXCLUDED.open_book_tests,
			end_of_term_tests = EXCLUDED.end_of_term_tests,
			total_marks = EXCLUDED.total_marks,
			letter_grade = EXCLUDED.letter_grade,
			updated_at = NOW()
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		grade.StudentID,
		grade.Subject,
		grade.Term,
		grade.AcademicYear,
		grade.WeeklyTests,
		grade.Projects,
		grade.Assignments,
		grade.TakeHomeTests,
		grade.OpenBookTests,
		grade.EndOfTermTest,
		grade.TotalMarks,
		grade.LetterGrade,
	).Scan(&grade.ID)
	if err != nil {
		return fmt.Errorf("error upserting grade record: %w", err)
	}

	return nil
}

// GetByID retrieves a grade record by ID
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.GradeRecord, error) {
	query := `SELECT ` + gradeColumns + ` FROM grade_records WHERE id = $1`

	grade, err := scanGrade(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGradeRecordNotFound
		}
		return nil, fmt.Errorf("error retrieving grade record: %w", err)
	}

	return grade, nil
}

// List retrieves grade records filtered by student, subject, term and year
func (r *GradeRepository) List(ctx context.Context, studentID int64, subject, term, academicYear string) ([]*models.GradeRecord, error) {
	query := `SELECT ` + gradeColumns + ` FROM grade_records WHERE TRUE`
	args := []interface{}{}

	if studentID > 0 {
		args = append(args, studentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if subject != "" {
		args = append(args, subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}
	if term != "" {
		args = append(args, term)
		query += fmt.Sprintf(" AND term = $%d", len(args))
	}
	if academicYear != "" {
		args = append(args, academicYear)
		query += fmt.Sprintf(" AND academic_year = $%d", len(args))
	}

	query += " ORDER BY academic_year, term, subject"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.GradeRecord
	for rows.Next() {
		grade, err := scanGrade(rows)
		if err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// LetterGradesForTermTx returns the letter grades of a student's records for
// one term and academic year inside a transaction. Empty letter grades are
// returned too; the caller decides how to treat ungraded records.
func (r *GradeRepository) LetterGradesForTermTx(ctx context.Context, tx pgx.Tx, studentID int64, term models.Term, academicYear string) ([]string, error) {
	query := `
		SELECT letter_grade FROM grade_records
		WHERE student_id = $1 AND term = $2 AND academic_year = $3
	`

	rows, err := tx.Query(ctx, query, studentID, term, academicYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var letters []string
	for rows.Next() {
		var letter string
		if err := rows.Scan(&letter); err != nil {
			return nil, err
		}
		letters = append(letters, letter)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return letters, nil
}
