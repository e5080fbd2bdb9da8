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

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	List(ctx context.Context, viewerID int64) ([]models.CourseListing, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.CourseListing, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	SetThumbnail(ctx context.Context, id int64, thumbnail string) error
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// courseColumns selects a course with its instructor's username; the caller joins users u
var courseColumns = []string{
	"c.id", "c.instructor_id", "c.title", "c.description", "c.price::text", "c.thumbnail",
	"c.created_at", "u.username",
}

func (r *CourseRepository) selectListingQuery() squirrel.SelectBuilder {
	return psql.Select(courseColumns...).
		Column("COALESCE(e.status, '')").
		From("courses c").
		Join("users u ON u.id = c.instructor_id")
}

func scanCourseListings(rows pgx.Rows) ([]models.CourseListing, error) {
	defer rows.Close()

	courses := make([]models.CourseListing, 0)
	for rows.Next() {
		var (
			item   models.CourseListing
			status string
		)
		err := rows.Scan(
			&item.ID, &item.InstructorID, &item.Title, &item.Description, &item.Price, &item.Thumbnail,
			&item.CreatedAt, &item.InstructorName, &status,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		if item.ViewerStatus, err = models.ParseEnrollmentState(status); err != nil {
			return nil, err
		}
		courses = append(courses, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// List returns every course, newest first, with the viewer's enrollment status.
// A viewerID of 0 stands for an anonymous viewer and matches no enrollment.
func (r *CourseRepository) List(ctx context.Context, viewerID int64) ([]models.CourseListing, error) {
	sql, args, err := r.selectListingQuery().
		LeftJoin("enrollments e ON e.course_id = c.id AND e.student_id = ?", viewerID).
		OrderBy("c.created_at DESC", "c.id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, err
	}
	return scanCourseListings(rows)
}

// ListByStudent returns the courses the student has an enrollment for, whatever its status
func (r *CourseRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.CourseListing, error) {
	sql, args, err := r.selectListingQuery().
		Join("enrollments e ON e.course_id = c.id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("e.enrolled_at DESC", "c.id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list student courses SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list student courses query")
		return nil, err
	}
	return scanCourseListings(rows)
}

// GetByID retrieves a course with its instructor's name
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := psql.Select(courseColumns...).
		From("courses c").
		Join("users u ON u.id = c.instructor_id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID, &course.InstructorID, &course.Title, &course.Description, &course.Price, &course.Thumbnail,
		&course.CreatedAt, &course.InstructorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error getting course by ID")
		return nil, err
	}
	return course, nil
}

// Create inserts a course; an empty price is stored as 0.00
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	price := course.Price
	if price == "" {
		price = "0"
	}

	sql, args, err := psql.Insert("courses").
		Columns("instructor_id", "title", "description", "price", "thumbnail").
		Values(course.InstructorID, course.Title, course.Description, squirrel.Expr("?::numeric", price), course.Thumbnail).
		Suffix("RETURNING id, price::text, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.Price, &course.CreatedAt)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrUserNotFound
		case dberrors.IsNumericOutOfRange(err):
			return apperrors.NewCustomError(apperrors.ErrValidationFailed, "price is out of range").
				WithDetails(map[string]interface{}{"field": "price"})
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// Delete removes a course; lessons, enrollments and progress go with it
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error deleting course")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// SetThumbnail stores the thumbnail reference of a course
func (r *CourseRepository) SetThumbnail(ctx context.Context, id int64, thumbnail string) error {
	sql, args, err := psql.Update("courses").
		Set("thumbnail", thumbnail).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error updating course thumbnail")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
