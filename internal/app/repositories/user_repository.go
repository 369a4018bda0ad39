package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/schoolhub/internal/app/models"
)

// User error types
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `
	id, username, email, password, role, permissions, assigned_classes,
	assigned_subjects, staff_id, must_set_password, registration_token,
	token_expires_at, is_active, last_login_at, created_at, updated_at
`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.Role,
		&u.Permissions,
		&u.AssignedClasses,
		&u.AssignedSubjects,
		&u.StaffID,
		&u.MustSetPassword,
		&u.RegistrationToken,
		&u.TokenExpiresAt,
		&u.IsActive,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create creates a new user account
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			username, email, password, role, permissions, assigned_classes,
			assigned_subjects, staff_id, must_set_password, registration_token, token_expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, is_active, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Password,
		user.Role,
		user.Permissions,
		user.AssignedClasses,
		user.AssignedSubjects,
		user.StaffID,
		user.MustSetPassword,
		user.RegistrationToken,
		user.TokenExpiresAt,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an active user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND is_active`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves an active user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND is_active`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// List retrieves all user accounts. Deactivated accounts stay in the
// result with is_active false so the admin listing can show and reactivate
// them.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// ExistsByUsernameOrEmail checks if a username or email is already taken
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		username, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}

	return exists, nil
}

// Update overwrites the mutable account fields of an existing active user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, role = $2, permissions = $3, assigned_classes = $4,
			assigned_subjects = $5, staff_id = $6, updated_at = NOW()
		WHERE id = $7 AND is_active
	`

	cmdTag, err := r.db.Exec(ctx, query,
		user.Email,
		user.Role,
		user.Permissions,
		user.AssignedClasses,
		user.AssignedSubjects,
		user.StaffID,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SoftDelete marks a user inactive
func (r *UserRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin stamps the last successful login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// SetRegistrationToken issues a fresh registration token for a pending account
func (r *UserRepository) SetRegistrationToken(ctx context.Context, id int64, token string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET registration_token = $1, token_expires_at = $2, must_set_password = TRUE, updated_at = NOW()
		WHERE id = $3 AND is_active
	`

	cmdTag, err := r.db.Exec(ctx, query, token, expiresAt, id)
	if err != nil {
		return fmt.Errorf("error setting registration token: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CompleteRegistration sets the real password hash and consumes the token
func (r *UserRepository) CompleteRegistration(ctx context.Context, id int64, passwordHash string) error {
	query := `
		UPDATE users
		SET password = $1, must_set_password = FALSE, registration_token = NULL,
			token_expires_at = NULL, updated_at = NOW()
		WHERE id = $2 AND is_active
	`

	cmdTag, err := r.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("error completing registration: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
