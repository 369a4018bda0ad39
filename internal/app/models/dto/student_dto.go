package dto

// CreateStudentRequest carries the fields for a new student record.
// StudentNumber is optional; one is generated when absent.
type CreateStudentRequest struct {
	StudentNumber string   `json:"studentNumber"`
	FirstName     string   `json:"firstName" binding:"required"`
	LastName      string   `json:"lastName" binding:"required"`
	GradeLevel    string   `json:"gradeLevel" binding:"required"`
	ClassSection  string   `json:"classSection" binding:"required"`
	DateOfBirth   string   `json:"dateOfBirth" binding:"required" example:"2014-03-21"`
	Gender        string   `json:"gender" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	GuardianName  string   `json:"guardianName"`
	GuardianPhone string   `json:"guardianPhone"`
	Subjects      []string `json:"subjects"`
}

// UpdateStudentRequest carries a partial update; only non-nil fields are applied.
type UpdateStudentRequest struct {
	FirstName     *string   `json:"firstName"`
	LastName      *string   `json:"lastName"`
	GradeLevel    *string   `json:"gradeLevel"`
	ClassSection  *string   `json:"classSection"`
	DateOfBirth   *string   `json:"dateOfBirth"`
	Gender        *string   `json:"gender"`
	Address       *string   `json:"address"`
	GuardianName  *string   `json:"guardianName"`
	GuardianPhone *string   `json:"guardianPhone"`
	Subjects      *[]string `json:"subjects"`
}

// SaveStudentRequest is the form-style payload: no id means create,
// an id means update. Accepted as JSON or urlencoded form.
type SaveStudentRequest struct {
	ID            *int64   `json:"id" form:"id"`
	StudentNumber string   `json:"studentNumber" form:"student_number"`
	FirstName     string   `json:"firstName" form:"first_name"`
	LastName      string   `json:"lastName" form:"last_name"`
	GradeLevel    string   `json:"gradeLevel" form:"grade_level"`
	ClassSection  string   `json:"classSection" form:"class_section"`
	DateOfBirth   string   `json:"dateOfBirth" form:"date_of_birth"`
	Gender        string   `json:"gender" form:"gender"`
	Address       string   `json:"address" form:"address"`
	GuardianName  string   `json:"guardianName" form:"guardian_name"`
	GuardianPhone string   `json:"guardianPhone" form:"guardian_phone"`
	Subjects      []string `json:"subjects" form:"subjects"`
}

// StudentListFilter narrows the student listing.
type StudentListFilter struct {
	GradeLevel   string `form:"grade"`
	ClassSection string `form:"class"`
	Search       string `form:"search"`
}
