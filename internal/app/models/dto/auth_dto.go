package dto

import "time"

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"s3cret123"`
}

// CompleteRegistrationRequest activates an invited account
type CompleteRegistrationRequest struct {
	Username string `json:"username" binding:"required"`
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserProfile is the authenticated user's view of their own account
type UserProfile struct {
	ID               int64      `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	Permissions      []string   `json:"permissions"`
	AssignedClasses  []string   `json:"assignedClasses"`
	AssignedSubjects []string   `json:"assignedSubjects"`
	StaffID          *int64     `json:"staffId,omitempty"`
	LastLoginAt      *time.Time `json:"lastLoginAt,omitempty"`
}

// TokenResponse is returned on successful login
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"28800"`
	User      *UserProfile `json:"user"`
}
