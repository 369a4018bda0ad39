package models

import "time"

// GradeRecord defines per-subject grade components for a student,
// unique per (student, subject, term, academic year).
type GradeRecord struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	Subject       string    `json:"subject" db:"subject"`
	Term          Term      `json:"term" db:"term"`
	AcademicYear  string    `json:"academicYear" db:"academic_year" example:"2025/2026"`
	WeeklyTests   []float64 `json:"weeklyTests" db:"weekly_tests"`
	Projects      []float64 `json:"projects" db:"projects"`
	Assignments   []float64 `json:"assignments" db:"assignments"`
	TakeHomeTests []float64 `json:"takeHomeTests" db:"take_home_tests"`
	OpenBookTests []float64 `json:"openBookTests" db:"open_book_tests"`
	EndOfTermTest []float64 `json:"endOfTermTests" db:"end_of_term_tests"`
	TotalMarks    float64   `json:"totalMarks" db:"total_marks"`
	LetterGrade   string    `json:"letterGrade" db:"letter_grade" example:"B"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// ComponentScores returns all sub-scores across grade components.
func (g *GradeRecord) ComponentScores() []float64 {
	var all []float64
	for _, component := range [][]float64{
		g.WeeklyTests, g.Projects, g.Assignments,
		g.TakeHomeTests, g.OpenBookTests, g.EndOfTermTest,
	} {
		all = append(all, component...)
	}
	return all
}
