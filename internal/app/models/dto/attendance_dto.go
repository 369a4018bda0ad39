package dto

// AttendanceEntry is one student's entry inside a batch submission.
type AttendanceEntry struct {
	StudentID int64   `json:"studentId" binding:"required"`
	Status    string  `json:"status" binding:"required,oneof=PRESENT ABSENT LATE"`
	Notes     *string `json:"notes"`
}

// RecordAttendanceBatchRequest submits attendance for one date and subject
// across many students. The batch persists atomically.
type RecordAttendanceBatchRequest struct {
	Date    string            `json:"date" binding:"required" example:"2026-08-29"`
	Subject string            `json:"subject" binding:"required"`
	Entries []AttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}

// AttendanceListFilter narrows the attendance listing.
type AttendanceListFilter struct {
	StudentID int64  `form:"studentId"`
	Date      string `form:"date"`
	Subject   string `form:"subject"`
}
