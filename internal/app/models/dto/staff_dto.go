package dto

// CreateStaffRequest carries the fields for a new staff profile.
type CreateStaffRequest struct {
	FirstName string   `json:"firstName" binding:"required"`
	LastName  string   `json:"lastName" binding:"required"`
	Position  string   `json:"position" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Phone     string   `json:"phone"`
	Subjects  []string `json:"subjects"`
}

// UpdateStaffRequest carries a partial update; only non-nil fields are applied.
type UpdateStaffRequest struct {
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Position  *string   `json:"position"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Subjects  *[]string `json:"subjects"`
}
