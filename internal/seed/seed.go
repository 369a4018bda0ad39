package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/okandemir/schoolhub/internal/app/models"
	appRepos "github.com/okandemir/schoolhub/internal/app/repositories"
	"github.com/okandemir/schoolhub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@schoolhub.local"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultAdmin provisions the default admin account on first boot so
// the system is usable before any user exists. It does nothing when the
// account is already present.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.ExistsByUsernameOrEmail(ctx, defaultAdminUsername, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	lgr.Info().Msg("Creating default admin user...")

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Username:         defaultAdminUsername,
		Email:            defaultAdminEmail,
		Password:         hash,
		Role:             appModels.RoleAdmin,
		Permissions:      []string{"*"},
		AssignedClasses:  []string{},
		AssignedSubjects: []string{},
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created, change the password after first login")
	return nil
}
