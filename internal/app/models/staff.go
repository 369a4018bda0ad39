package models

import "time"

// StaffMember defines the staff profile based on the 'staff' table.
// Login credentials live on the users table, linked by users.staff_id.
type StaffMember struct {
	ID        int64     `json:"id" db:"id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Position  string    `json:"position" db:"position" example:"Mathematics Teacher"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Subjects  []string  `json:"subjects" db:"subjects"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
