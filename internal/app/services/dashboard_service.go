package services

import (
	"context"
	"fmt"

	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/repositories"
)

// DashboardService serves the read-only summary counters shown on the
// dashboard. Every value is a fresh query; there is no caching.
type DashboardService struct {
	studentRepo    *repositories.StudentRepository
	staffRepo      *repositories.StaffRepository
	attendanceRepo *repositories.AttendanceRepository
	financeRepo    *repositories.FinanceRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	studentRepo *repositories.StudentRepository,
	staffRepo *repositories.StaffRepository,
	attendanceRepo *repositories.AttendanceRepository,
	financeRepo *repositories.FinanceRepository,
) *DashboardService {
	return &DashboardService{
		studentRepo:    studentRepo,
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
		financeRepo:    financeRepo,
	}
}

// GetStats collects the current summary counters
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	students, err := s.studentRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	staff, err := s.staffRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting staff: %w", err)
	}

	recorded, present, err := s.attendanceRepo.TodayCounts(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.financeRepo.PendingTotal(ctx)
	if err != nil {
		return nil, err
	}

	perGrade, err := s.studentRepo.CountPerGradeLevel(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students per grade: %w", err)
	}

	return &dto.DashboardStats{
		TotalStudents:    students,
		TotalStaff:       staff,
		TodayPresent:     present,
		TodayRecorded:    recorded,
		PendingFeesTotal: pending,
		StudentsPerGrade: perGrade,
	}, nil
}
