package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appModels "github.com/gocode/elearning/internal/app/models"
	appRepos "github.com/gocode/elearning/internal/app/repositories"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/gocode/elearning/internal/pkg/auth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// AdminParams describes the superuser to create
type AdminParams struct {
	Email    string
	Username string
	Password string
}

// Validate checks that every field is present
func (p AdminParams) Validate() error {
	switch {
	case strings.TrimSpace(p.Email) == "":
		return apperrors.NewValidationError("admin email is required")
	case strings.TrimSpace(p.Username) == "":
		return apperrors.NewValidationError("admin username is required")
	case p.Password == "":
		return apperrors.NewValidationError("admin password is required")
	}
	return nil
}

// CreateSuperuser creates an active admin account unless one with the same email already
// exists. It reports whether a user was created.
func CreateSuperuser(ctx context.Context, userRepo appRepos.IUserRepository, params AdminParams, lgr zerolog.Logger) (bool, error) {
	if err := params.Validate(); err != nil {
		return false, err
	}
	email := strings.ToLower(strings.TrimSpace(params.Email))

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("error checking if admin user exists: %w", err)
	}
	if exists {
		lgr.Info().Str("email", email).Msg("Admin user already exists, skipping creation")
		return false, nil
	}

	hashed, err := auth.HashPassword(params.Password)
	if err != nil {
		return false, fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &appModels.User{
		Username: strings.TrimSpace(params.Username),
		Email:    email,
		Password: hashed,
		Role:     appModels.RoleAdmin,
		IsActive: true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("error creating admin user: %w", err)
	}

	lgr.Info().Int64("adminID", admin.ID).Str("email", email).Msg("Admin user created")
	return true, nil
}

// CreateDefaultData seeds the admin account at startup when a password is configured
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, params AdminParams, lgr zerolog.Logger) error {
	if params.Password == "" {
		lgr.Debug().Msg("No seed admin password configured, skipping default data")
		return nil
	}

	_, err := CreateSuperuser(ctx, appRepos.NewUserRepository(dbPool), params, lgr)
	return err
}
