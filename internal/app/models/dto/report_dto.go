package dto

// GenerateReportRequest asks for a fresh report snapshot of one student.
type GenerateReportRequest struct {
	StudentID    int64  `json:"studentId" binding:"required"`
	Term         string `json:"term" binding:"required,oneof=TERM_1 TERM_2 TERM_3"`
	AcademicYear string `json:"academicYear" binding:"required" example:"2025/2026"`
}

// DashboardStats holds the read-only summary counters for the dashboard.
type DashboardStats struct {
	TotalStudents    int64            `json:"totalStudents"`
	TotalStaff       int64            `json:"totalStaff"`
	TodayPresent     int64            `json:"todayPresent"`
	TodayRecorded    int64            `json:"todayRecorded"`
	PendingFeesTotal float64          `json:"pendingFeesTotal"`
	StudentsPerGrade map[string]int64 `json:"studentsPerGrade"`
}
