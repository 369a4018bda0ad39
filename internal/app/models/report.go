package models

import "time"

// FinancialStatus represents a student's fee clearance state on a report.
type FinancialStatus string

const (
	FinancialCleared    FinancialStatus = "CLEARED"
	FinancialNotCleared FinancialStatus = "NOT_CLEARED"
)

// StudentReport is a persisted snapshot of a student's academic, attendance
// and financial standing, unique per (student, term, academic year).
type StudentReport struct {
	ID                   int64           `json:"id" db:"id"`
	StudentID            int64           `json:"studentId" db:"student_id"`
	Term                 Term            `json:"term" db:"term"`
	AcademicYear         string          `json:"academicYear" db:"academic_year"`
	GPA                  float64         `json:"gpa" db:"gpa" example:"3.5"`
	TotalSchoolDays      int             `json:"totalSchoolDays" db:"total_school_days"`
	DaysPresent          int             `json:"daysPresent" db:"days_present"`
	DaysAbsent           int             `json:"daysAbsent" db:"days_absent"`
	AttendancePercentage float64         `json:"attendancePercentage" db:"attendance_percentage" example:"90"`
	FinancialStatus      FinancialStatus `json:"financialStatus" db:"financial_status"`
	OutstandingAmount    float64         `json:"outstandingAmount" db:"outstanding_amount"`
	GeneratedAt          time.Time       `json:"generatedAt" db:"generated_at"`
	UpdatedAt            time.Time       `json:"updatedAt" db:"updated_at"`
}
