package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	StudentNumber string    `json:"studentNumber" db:"student_number" example:"STU2026001"`
	FirstName     string    `json:"firstName" db:"first_name" example:"Amina"`
	LastName      string    `json:"lastName" db:"last_name" example:"Diallo"`
	GradeLevel    string    `json:"gradeLevel" db:"grade_level" example:"JSS2"`
	ClassSection  string    `json:"classSection" db:"class_section" example:"B"`
	DateOfBirth   time.Time `json:"dateOfBirth" db:"date_of_birth"`
	Gender        string    `json:"gender" db:"gender" example:"F"`
	Address       string    `json:"address" db:"address"`
	GuardianName  string    `json:"guardianName" db:"guardian_name"`
	GuardianPhone string    `json:"guardianPhone" db:"guardian_phone"`
	Subjects      []string  `json:"subjects" db:"subjects"` // enrolled subjects, stored as a text array
	IsActive      bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
