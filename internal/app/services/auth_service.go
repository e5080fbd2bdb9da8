package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/app/repositories"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/gocode/elearning/internal/pkg/auth"
	"github.com/gocode/elearning/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// AuthService handles registration, login and profile lookups
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func fieldDetail(field string) map[string]interface{} {
	return map[string]interface{}{"field": field}
}

// validateRegistration checks what the binding tags cannot express
func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if !validation.CompiledPatterns.Username.MatchString(req.Username) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"username may only contain letters, digits and . _ -").WithDetails(fieldDetail("username"))
	}
	if !validation.CompiledPatterns.Email.MatchString(req.Email) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "invalid email format").WithDetails(fieldDetail("email"))
	}
	if !validation.PasswordStrongEnough(req.Password) {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			fmt.Sprintf("password must be at least %d characters and contain a letter and a digit", validation.PasswordMinLength)).
			WithDetails(fieldDetail("password"))
	}
	if req.Role != models.RoleStudent && req.Role != models.RoleInstructor {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "role must be student or instructor").WithDetails(fieldDetail("role"))
	}
	return nil
}

// Register creates a student or instructor account and logs it in
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)

	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	exists, err = s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking if username exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Role:      req.Role,
		IsActive:  true,
	}

	// A concurrent registration can still trip the unique constraints; the repository
	// reports those as the same conflict errors
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return s.generateTokenResponse(user)
}

// Login authenticates a user by email and password
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.generateTokenResponse(user)
}

// GetProfile retrieves the user's public profile
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	if userID <= 0 {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *authServiceImpl) generateTokenResponse(user *models.User) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        dto.NewUserResponse(user),
	}, nil
}
