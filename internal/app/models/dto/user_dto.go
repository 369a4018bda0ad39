package dto

import "time"

// CreateUserRequest registers a user account. An empty password triggers the
// invite flow: the account is created with a placeholder hash and a
// time-boxed registration token instead.
type CreateUserRequest struct {
	Username         string   `json:"username" binding:"required,min=3"`
	Email            string   `json:"email" binding:"required,email"`
	Password         string   `json:"password" binding:"omitempty,min=8"`
	Role             string   `json:"role" binding:"required,oneof=ADMIN STAFF"`
	Permissions      []string `json:"permissions"`
	AssignedClasses  []string `json:"assignedClasses"`
	AssignedSubjects []string `json:"assignedSubjects"`
	StaffID          *int64   `json:"staffId"`
}

// UpdateUserRequest carries a partial update; only non-nil fields are applied.
type UpdateUserRequest struct {
	Email            *string   `json:"email"`
	Role             *string   `json:"role"`
	Permissions      *[]string `json:"permissions"`
	AssignedClasses  *[]string `json:"assignedClasses"`
	AssignedSubjects *[]string `json:"assignedSubjects"`
	StaffID          *int64    `json:"staffId"`
}

// InviteResponse is returned when a registration token is issued.
type InviteResponse struct {
	Username          string    `json:"username"`
	RegistrationToken string    `json:"registrationToken"`
	ExpiresAt         time.Time `json:"expiresAt"`
}
