package repositories

import (
	"context"
	"fmt"

	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/gocode/elearning/internal/pkg/dberrors"
	"github.com/gocode/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IProgressRepository defines the interface for lesson progress operations
type IProgressRepository interface {
	MarkComplete(ctx context.Context, studentID, lessonID int64) (*models.LessonProgress, error)
}

// ProgressRepository handles database operations for lesson progress
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// MarkComplete upserts the (student, lesson) progress row with completed = true.
// Repeated calls leave a single row and only refresh updated_at.
func (r *ProgressRepository) MarkComplete(ctx context.Context, studentID, lessonID int64) (*models.LessonProgress, error) {
	sql, args, err := psql.Insert("lesson_progress").
		Columns("student_id", "lesson_id", "completed").
		Values(studentID, lessonID, true).
		Suffix("ON CONFLICT (student_id, lesson_id) DO UPDATE SET completed = EXCLUDED.completed, updated_at = now()").
		Suffix("RETURNING student_id, lesson_id, completed, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building mark lesson complete SQL")
		return nil, err
	}

	p := &models.LessonProgress{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.StudentID, &p.LessonID, &p.Completed, &p.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrLessonNotFound
		}
		logger.Error().Err(err).Int64("lessonID", lessonID).Int64("studentID", studentID).Msg("Error upserting lesson progress")
		return nil, fmt.Errorf("error marking lesson complete: %w", err)
	}
	return p, nil
}
