package services

import (
	"context"
	"errors"
	"time"

	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/repositories"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
	"github.com/okandemir/schoolhub/internal/pkg/auth"
	"github.com/okandemir/schoolhub/internal/pkg/logger"
)

// AuthService handles login and the registration-token flow
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// profileFor builds the profile view of a user account
func profileFor(user *models.User) *dto.UserProfile {
	return &dto.UserProfile{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		Role:             string(user.Role),
		Permissions:      user.Permissions,
		AssignedClasses:  user.AssignedClasses,
		AssignedSubjects: user.AssignedSubjects,
		StaffID:          user.StaffID,
		LastLoginAt:      user.LastLoginAt,
	}
}

// Login checks credentials and returns the profile plus a session token.
// Accounts awaiting registration completion cannot log in.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewStorageError(err, "error during login")
	}

	if user.MustSetPassword {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the stamp is informational.
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLoginAt = &now

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      profileFor(user),
	}, nil
}

// checkRegistrationToken validates a submitted registration token against the
// stored value and expiry.
func checkRegistrationToken(user *models.User, token string, now time.Time) error {
	if !user.MustSetPassword || user.RegistrationToken == nil {
		return apperrors.ErrTokenInvalid
	}

	if *user.RegistrationToken != token {
		return apperrors.ErrTokenInvalid
	}

	if user.TokenExpiresAt == nil || now.After(*user.TokenExpiresAt) {
		return apperrors.ErrTokenExpired
	}

	return nil
}

// CompleteRegistration activates an invited account: the token is validated
// and consumed, and the real password hash replaces the placeholder. An
// expired or wrong token leaves the stored hash untouched.
func (s *AuthService) CompleteRegistration(ctx context.Context, req *dto.CompleteRegistrationRequest) error {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrTokenInvalid
		}
		return apperrors.NewStorageError(err, "error during registration")
	}

	if err := checkRegistrationToken(user, req.Token, time.Now()); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	if err := s.userRepo.CompleteRegistration(ctx, user.ID, hash); err != nil {
		return apperrors.NewStorageError(err, "error completing registration")
	}

	logger.Info().Str("username", user.Username).Msg("Registration completed")
	return nil
}

// GetProfile returns the profile of the authenticated user
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError(err, "error retrieving profile")
	}

	return profileFor(user), nil
}
