package services

import (
	"context"
	"testing"
	"time"

	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/gocode/elearning/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (AuthService, *memStore, *auth.JWTService) {
	t.Helper()

	store := newMemStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "elearning-test",
	})
	return NewAuthService(fakeUserRepo{store}, jwtService, zerolog.Nop()), store, jwtService
}

func validRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:  "ada",
		Email:     "Ada@Example.com ",
		Password:  "analytical1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.RoleStudent,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, jwtService := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "Bearer", registered.TokenType)
	assert.EqualValues(t, 3600, registered.ExpiresIn)
	require.NotNil(t, registered.User)
	assert.Equal(t, "ada@example.com", registered.User.Email)

	claims, err := jwtService.ValidateAndExtractClaims(registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "student", claims.Role)

	loggedIn, err := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "analytical1"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	profile, err := svc.GetProfile(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", profile.LastName)
}

func TestRegisterConflicts(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRegistration())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	again := validRegistration()
	again.Email = "other@example.com"
	_, err = svc.Register(ctx, again)
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	tests := []struct {
		name   string
		mutate func(r *dto.RegisterRequest)
		target error
		field  string
	}{
		{"bad username", func(r *dto.RegisterRequest) { r.Username = "ada lovelace" }, apperrors.ErrValidationFailed, "username"},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, apperrors.ErrInvalidEmail, "email"},
		{"weak password", func(r *dto.RegisterRequest) { r.Password = "password" }, apperrors.ErrInvalidPassword, "password"},
		{"admin role", func(r *dto.RegisterRequest) { r.Role = models.RoleAdmin }, apperrors.ErrValidationFailed, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegistration()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			require.ErrorIs(t, err, tt.target)

			var custom *apperrors.CustomError
			require.ErrorAs(t, err, &custom)
			assert.Equal(t, tt.field, custom.Details["field"])
		})
	}
}

func TestLoginFailures(t *testing.T) {
	svc, store, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "wrong-password1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "analytical1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	store.mu.Lock()
	store.users[registered.User.ID].IsActive = false
	store.mu.Unlock()

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "analytical1"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestGetProfileErrors(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.GetProfile(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	_, err = svc.GetProfile(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
