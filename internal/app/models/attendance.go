package models

import "time"

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	default:
		return false
	}
}

// CountsAsPresent reports whether the status counts toward days present.
// Late arrivals are still attendance.
func (s AttendanceStatus) CountsAsPresent() bool {
	return s == AttendancePresent || s == AttendanceLate
}

// AttendanceRecord defines one attendance entry, unique per (date, student, subject).
type AttendanceRecord struct {
	ID         int64            `json:"id" db:"id"`
	StudentID  int64            `json:"studentId" db:"student_id"`
	Date       time.Time        `json:"date" db:"attendance_date"`
	Subject    string           `json:"subject" db:"subject"`
	Status     AttendanceStatus `json:"status" db:"status"`
	Notes      *string          `json:"notes,omitempty" db:"notes"`
	RecordedBy int64            `json:"recordedBy" db:"recorded_by"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time        `json:"updatedAt" db:"updated_at"`
}
