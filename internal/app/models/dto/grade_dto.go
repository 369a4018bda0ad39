package dto

// SaveGradeRequest creates or overwrites the grade record keyed by
// (student, subject, term, academic year). Total marks and letter grade
// are recomputed from the components on every save.
type SaveGradeRequest struct {
	StudentID     int64     `json:"studentId" binding:"required"`
	Subject       string    `json:"subject" binding:"required"`
	Term          string    `json:"term" binding:"required,oneof=TERM_1 TERM_2 TERM_3"`
	AcademicYear  string    `json:"academicYear" binding:"required" example:"2025/2026"`
	WeeklyTests   []float64 `json:"weeklyTests"`
	Projects      []float64 `json:"projects"`
	Assignments   []float64 `json:"assignments"`
	TakeHomeTests []float64 `json:"takeHomeTests"`
	OpenBookTests []float64 `json:"openBookTests"`
	EndOfTermTest []float64 `json:"endOfTermTests"`
}

// GradeListFilter narrows the grade listing.
type GradeListFilter struct {
	StudentID    int64  `form:"studentId"`
	Subject      string `form:"subject"`
	Term         string `form:"term"`
	AcademicYear string `form:"academicYear"`
}
