package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	AttendanceRepository *AttendanceRepository
	GradeRepository      *GradeRepository
	FinanceRepository    *FinanceRepository
	StaffRepository      *StaffRepository
	UserRepository       *UserRepository
	ReportRepository     *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		GradeRepository:      NewGradeRepository(db),
		FinanceRepository:    NewFinanceRepository(db),
		StaffRepository:      NewStaffRepository(db),
		UserRepository:       NewUserRepository(db),
		ReportRepository:     NewReportRepository(db),
	}
}
