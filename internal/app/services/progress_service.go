package services

import (
	"context"

	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/repositories"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ProgressService records lesson completion
type ProgressService interface {
	MarkLessonComplete(ctx context.Context, student models.Principal, lessonID int64) error
}

// progressServiceImpl implements ProgressService
type progressServiceImpl struct {
	lessonRepo   repositories.ILessonRepository
	progressRepo repositories.IProgressRepository
	logger       zerolog.Logger
}

// NewProgressService creates a new ProgressService
func NewProgressService(lessonRepo repositories.ILessonRepository, progressRepo repositories.IProgressRepository, logger zerolog.Logger) ProgressService {
	return &progressServiceImpl{
		lessonRepo:   lessonRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// MarkLessonComplete flags the lesson as completed for the student. Calling it again
// keeps the single progress row completed.
func (s *progressServiceImpl) MarkLessonComplete(ctx context.Context, student models.Principal, lessonID int64) error {
	if student.Anonymous() {
		return apperrors.ErrUnauthenticated
	}

	if _, err := s.lessonRepo.GetByID(ctx, lessonID); err != nil {
		return err
	}

	progress, err := s.progressRepo.MarkComplete(ctx, student.UserID, lessonID)
	if err != nil {
		return err
	}

	s.logger.Debug().
		Int64("studentID", progress.StudentID).
		Int64("lessonID", progress.LessonID).
		Time("updatedAt", progress.UpdatedAt).
		Msg("Lesson marked complete")
	return nil
}
