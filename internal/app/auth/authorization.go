package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/repositories"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/gocode/elearning/internal/pkg/logger"
)

// Authorization errors; both unwrap to apperrors.ErrPermissionDenied
var (
	ErrNotInstructor  = apperrors.NewForbiddenError("only instructors can perform this action")
	ErrNotCourseOwner = apperrors.NewForbiddenError("you don't have permission to modify this course")
)

// AuthorizationService answers ownership and role questions about courses
type AuthorizationService struct {
	userRepo   repositories.IUserRepository
	courseRepo repositories.ICourseRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository, courseRepo repositories.ICourseRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
	}
}

// IsInstructor checks if the user may publish courses. Admins count as instructors.
func (s *AuthorizationService) IsInstructor(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, err
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in IsInstructor")
		return false, err
	}
	return user.IsActive && (user.Role == models.RoleInstructor || user.Role == models.RoleAdmin), nil
}

// ValidateInstructor validates if the user is an instructor or returns an error
func (s *AuthorizationService) ValidateInstructor(ctx context.Context, userID int64) error {
	isInstructor, err := s.IsInstructor(ctx, userID)
	if err != nil {
		return err
	}
	if !isInstructor {
		return ErrNotInstructor
	}
	return nil
}

// CanModifyCourse loads the course and reports whether the principal owns it or is an admin
func (s *AuthorizationService) CanModifyCourse(ctx context.Context, courseID int64, p models.Principal) (*models.Course, bool, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, false, err
		}
		logger.Error().Err(err).Int64("courseID", courseID).Int64("userID", p.UserID).Msg("Error fetching course for ownership check")
		return nil, false, fmt.Errorf("failed to check course ownership: %w", err)
	}
	return course, IsCourseOwner(course, p) || p.IsAdmin(), nil
}

// ValidateCourseOwnership returns the course when the principal may modify it
func (s *AuthorizationService) ValidateCourseOwnership(ctx context.Context, courseID int64, p models.Principal) (*models.Course, error) {
	course, canModify, err := s.CanModifyCourse(ctx, courseID, p)
	if err != nil {
		return nil, err
	}
	if !canModify {
		return nil, ErrNotCourseOwner
	}
	return course, nil
}

// IsCourseOwner reports whether the principal is the course's instructor
func IsCourseOwner(course *models.Course, p models.Principal) bool {
	return course != nil && !p.Anonymous() && course.InstructorID == p.UserID
}

// CanViewLessonContent decides whether lesson bodies are shown. With gating off every
// authenticated viewer sees them; with gating on only the owner, admins and active
// students do.
func CanViewLessonContent(course *models.Course, p models.Principal, state models.EnrollmentState, gated bool) bool {
	if !gated {
		return true
	}
	return IsCourseOwner(course, p) || p.IsAdmin() || state == models.EnrollmentActive
}
