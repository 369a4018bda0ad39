package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/okandemir/schoolhub/internal/app/models"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/repositories"
	"github.com/okandemir/schoolhub/internal/pkg/apperrors"
	"github.com/okandemir/schoolhub/internal/pkg/auth"
	"github.com/okandemir/schoolhub/internal/pkg/dberrors"
	"github.com/okandemir/schoolhub/internal/pkg/logger"
)

// registrationTokenTTL bounds how long an invite stays redeemable
const registrationTokenTTL = 7 * 24 * time.Hour

// UserService manages login-credential accounts
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

func emptySliceIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// CreateUser registers a new account. When a password is supplied the account
// is immediately usable; otherwise a registration token is issued and the
// account stays locked until CompleteRegistration.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, *dto.InviteResponse, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, nil, apperrors.NewStorageError(err, "error checking user existence")
	}
	if exists {
		return nil, nil, apperrors.ErrUsernameAlreadyExists
	}

	user := &models.User{
		Username:         req.Username,
		Email:            req.Email,
		Role:             models.Role(req.Role),
		Permissions:      emptySliceIfNil(req.Permissions),
		AssignedClasses:  emptySliceIfNil(req.AssignedClasses),
		AssignedSubjects: emptySliceIfNil(req.AssignedSubjects),
		StaffID:          req.StaffID,
	}

	var invite *dto.InviteResponse

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, nil, err
		}
		user.Password = hash
	} else {
		// Invite flow: a random placeholder hash keeps the account
		// unusable until the token is redeemed.
		placeholder, err := auth.HashPassword(uuid.New().String())
		if err != nil {
			return nil, nil, err
		}

		token := uuid.New().String()
		expiresAt := time.Now().Add(registrationTokenTTL)

		user.Password = placeholder
		user.MustSetPassword = true
		user.RegistrationToken = &token
		user.TokenExpiresAt = &expiresAt

		invite = &dto.InviteResponse{
			Username:          req.Username,
			RegistrationToken: token,
			ExpiresAt:         expiresAt,
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return nil, nil, apperrors.ErrUsernameAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, nil, apperrors.NewStorageError(err, "error creating user")
	}

	logger.Info().Str("username", user.Username).Str("role", string(user.Role)).
		Bool("invited", invite != nil).Msg("User account created")

	return user, invite, nil
}

// ReissueInvite issues a fresh registration token for a pending account
func (s *UserService) ReissueInvite(ctx context.Context, id int64) (*dto.InviteResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError(err, "error retrieving user")
	}

	if !user.MustSetPassword {
		return nil, apperrors.NewConflictError("account registration is already completed")
	}

	token := uuid.New().String()
	expiresAt := time.Now().Add(registrationTokenTTL)

	if err := s.userRepo.SetRegistrationToken(ctx, id, token, expiresAt); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError(err, "error reissuing registration token")
	}

	return &dto.InviteResponse{
		Username:          user.Username,
		RegistrationToken: token,
		ExpiresAt:         expiresAt,
	}, nil
}

// GetUserByID retrieves an active account by ID
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError(err, "error retrieving user")
	}
	return user, nil
}

// ListUsers retrieves all accounts, deactivated ones included
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "error listing users")
	}
	return users, nil
}

// UpdateUser applies the non-nil fields of the request to an existing account
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStorageError(err, "error retrieving user")
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.Valid() {
			return nil, apperrors.NewValidationError("role", "role must be ADMIN or STAFF")
		}
		user.Role = role
	}
	if req.Permissions != nil {
		user.Permissions = emptySliceIfNil(*req.Permissions)
	}
	if req.AssignedClasses != nil {
		user.AssignedClasses = emptySliceIfNil(*req.AssignedClasses)
	}
	if req.AssignedSubjects != nil {
		user.AssignedSubjects = emptySliceIfNil(*req.AssignedSubjects)
	}
	if req.StaffID != nil {
		user.StaffID = req.StaffID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.NewStorageError(err, "error updating user")
	}

	return user, nil
}

// DeleteUser marks an account inactive
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.NewStorageError(err, "error deleting user")
	}

	logger.Info().Int64("userId", id).Msg("User account deactivated")
	return nil
}
