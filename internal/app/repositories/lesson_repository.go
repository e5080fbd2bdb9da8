package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/gocode/elearning/internal/pkg/dberrors"
	"github.com/gocode/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ILessonRepository defines the interface for lesson-related database operations
type ILessonRepository interface {
	ListByCourse(ctx context.Context, courseID, viewerID int64) ([]models.LessonWithProgress, error)
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
}

// LessonRepository handles database operations for lessons
type LessonRepository struct {
	db *pgxpool.Pool
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{db: db}
}

// ListByCourse returns the lessons of a course ordered by "order" then id, each flagged
// with whether viewerID completed it
func (r *LessonRepository) ListByCourse(ctx context.Context, courseID, viewerID int64) ([]models.LessonWithProgress, error) {
	sql, args, err := psql.Select(
		"l.id", "l.course_id", "l.title", "l.content", "l.video_url", `l."order"`,
		"COALESCE(p.completed, false)",
	).From("lessons l").
		LeftJoin("lesson_progress p ON p.lesson_id = l.id AND p.student_id = ?", viewerID).
		Where(squirrel.Eq{"l.course_id": courseID}).
		OrderBy(`l."order" ASC`, "l.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list lessons SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing list lessons query")
		return nil, err
	}
	defer rows.Close()

	lessons := make([]models.LessonWithProgress, 0)
	for rows.Next() {
		var l models.LessonWithProgress
		if err := rows.Scan(&l.ID, &l.CourseID, &l.Title, &l.Content, &l.VideoURL, &l.Order, &l.Completed); err != nil {
			return nil, fmt.Errorf("error scanning lesson row: %w", err)
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lesson rows: %w", err)
	}

	return lessons, nil
}

// GetByID retrieves a single lesson
func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	sql, args, err := psql.Select("id", "course_id", "title", "content", "video_url", `"order"`).
		From("lessons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	lesson := &models.Lesson{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.Content, &lesson.VideoURL, &lesson.Order,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonNotFound
		}
		logger.Error().Err(err).Int64("lessonID", id).Msg("Error getting lesson by ID")
		return nil, err
	}
	return lesson, nil
}

// Create inserts a lesson into its course
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	sql, args, err := psql.Insert("lessons").
		Columns("course_id", "title", "content", "video_url", `"order"`).
		Values(lesson.CourseID, lesson.Title, lesson.Content, lesson.VideoURL, lesson.Order).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create lesson SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&lesson.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", lesson.CourseID).Msg("Error executing create lesson query")
		return fmt.Errorf("error creating lesson: %w", err)
	}
	return nil
}
