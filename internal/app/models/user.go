package models

import "time"

// User defines the login-credential account based on the 'users' table
type User struct {
	ID                int64      `json:"id" db:"id" example:"1"`
	Username          string     `json:"username" db:"username"`
	Email             string     `json:"email" db:"email"`
	Password          string     `json:"-" db:"password"` // hashed, excluded from JSON
	Role              Role       `json:"role" db:"role" example:"STAFF"`
	Permissions       []string   `json:"permissions" db:"permissions"`
	AssignedClasses   []string   `json:"assignedClasses" db:"assigned_classes"`
	AssignedSubjects  []string   `json:"assignedSubjects" db:"assigned_subjects"`
	StaffID           *int64     `json:"staffId,omitempty" db:"staff_id"`
	MustSetPassword   bool       `json:"mustSetPassword" db:"must_set_password"`
	RegistrationToken *string    `json:"-" db:"registration_token"`
	TokenExpiresAt    *time.Time `json:"-" db:"token_expires_at"`
	IsActive          bool       `json:"isActive" db:"is_active"`
	LastLoginAt       *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`
}
