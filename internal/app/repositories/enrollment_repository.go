package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/db"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/gocode/elearning/internal/pkg/dberrors"
	"github.com/gocode/elearning/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DecisionFn inspects a locked enrollment and returns the status to store. Returning an
// error aborts the decision without writing anything.
type DecisionFn func(e *models.ManagedEnrollment) (models.EnrollmentState, error)

// IEnrollmentRepository defines the interface for enrollment-related database operations
type IEnrollmentRepository interface {
	// Request creates a pending enrollment or reopens a rejected one. changed is false
	// when an existing pending or active enrollment was left untouched.
	Request(ctx context.Context, studentID, courseID int64) (enrollment *models.Enrollment, changed bool, err error)
	GetState(ctx context.Context, studentID, courseID int64) (models.EnrollmentState, error)
	Decide(ctx context.Context, enrollmentID int64, decide DecisionFn) (*models.ManagedEnrollment, error)
	ListForInstructor(ctx context.Context, instructorID int64) ([]models.EnrollmentSummary, error)
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

var enrollmentColumns = []string{"id", "student_id", "course_id", "status", "enrolled_at"}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var (
		e      models.Enrollment
		status string
	)
	if err := row.Scan(&e.ID, &e.StudentID, &e.CourseID, &status, &e.EnrolledAt); err != nil {
		return nil, err
	}
	state, err := models.ParseEnrollmentState(status)
	if err != nil {
		return nil, err
	}
	e.Status = state
	return &e, nil
}

// Request runs as a single INSERT ... ON CONFLICT statement so concurrent requests for
// the same pair can never produce two rows. The conflict branch only fires for rejected
// enrollments; for pending or active ones no row is returned and the stored row is read.
func (r *EnrollmentRepository) Request(ctx context.Context, studentID, courseID int64) (*models.Enrollment, bool, error) {
	sql, args, err := psql.Insert("enrollments").
		Columns("student_id", "course_id", "status").
		Values(studentID, courseID, models.EnrollmentPending).
		Suffix("ON CONFLICT (student_id, course_id) DO UPDATE SET status = EXCLUDED.status WHERE enrollments.status = ?", models.EnrollmentRejected).
		Suffix("RETURNING id, student_id, course_id, status, enrolled_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building request enrollment SQL")
		return nil, false, err
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	switch {
	case err == nil:
		return enrollment, true, nil
	case errors.Is(err, pgx.ErrNoRows):
		// Existing pending or active enrollment, nothing written
	case dberrors.IsForeignKeyViolation(err):
		return nil, false, apperrors.ErrCourseNotFound
	case dberrors.IsUniqueViolation(err):
		// Lost a race against a concurrent insert; the row now exists
	default:
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error upserting enrollment")
		return nil, false, fmt.Errorf("error requesting enrollment: %w", err)
	}

	enrollment, err = r.get(ctx, studentID, courseID)
	if err != nil {
		return nil, false, err
	}
	return enrollment, false, nil
}

func (r *EnrollmentRepository) get(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	sql, args, err := psql.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).Msg("Error getting enrollment")
		return nil, err
	}
	return enrollment, nil
}

// GetState returns the student's enrollment state for a course, EnrollmentAbsent when
// there is none
func (r *EnrollmentRepository) GetState(ctx context.Context, studentID, courseID int64) (models.EnrollmentState, error) {
	enrollment, err := r.get(ctx, studentID, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEnrollmentNotFound) {
			return models.EnrollmentAbsent, nil
		}
		return models.EnrollmentAbsent, err
	}
	return enrollment.Status, nil
}

// Decide locks the enrollment row, asks decide for the next status and stores it in the
// same transaction
func (r *EnrollmentRepository) Decide(ctx context.Context, enrollmentID int64, decide DecisionFn) (*models.ManagedEnrollment, error) {
	sql, args, err := psql.Select(
		"e.id", "e.student_id", "e.course_id", "e.status", "e.enrolled_at",
		"c.instructor_id", "c.title", "u.username", "u.email",
	).From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Join("users u ON u.id = e.student_id").
		Where(squirrel.Eq{"e.id": enrollmentID}).
		Suffix("FOR UPDATE OF e").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get enrollment for update SQL")
		return nil, err
	}

	var managed models.ManagedEnrollment
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var status string
		err := tx.QueryRow(ctx, sql, args...).Scan(
			&managed.ID, &managed.StudentID, &managed.CourseID, &status, &managed.EnrolledAt,
			&managed.InstructorID, &managed.CourseTitle, &managed.StudentName, &managed.StudentEmail,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrEnrollmentNotFound
			}
			return fmt.Errorf("error loading enrollment: %w", err)
		}
		if managed.Status, err = models.ParseEnrollmentState(status); err != nil {
			return err
		}

		next, err := decide(&managed)
		if err != nil {
			return err
		}

		updateSQL, updateArgs, err := psql.Update("enrollments").
			Set("status", next).
			Where(squirrel.Eq{"id": managed.ID}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, updateSQL, updateArgs...); err != nil {
			return fmt.Errorf("error updating enrollment status: %w", err)
		}
		managed.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &managed, nil
}

// ListForInstructor returns the enrollments of every course taught by instructorID,
// newest first, with per-student lesson counts
func (r *EnrollmentRepository) ListForInstructor(ctx context.Context, instructorID int64) ([]models.EnrollmentSummary, error) {
	sql, args, err := psql.Select(
		"e.id", "e.student_id", "e.course_id", "e.status", "e.enrolled_at",
		"u.username", "u.email", "c.title",
		"(SELECT count(*) FROM lessons l WHERE l.course_id = c.id) AS total_lessons",
		`(SELECT count(*) FROM lesson_progress p JOIN lessons l ON l.id = p.lesson_id
			WHERE l.course_id = c.id AND p.student_id = e.student_id AND p.completed) AS completed_lessons`,
	).From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Join("users u ON u.id = e.student_id").
		Where(squirrel.Eq{"c.instructor_id": instructorID}).
		OrderBy("e.enrolled_at DESC", "e.id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building dashboard SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("instructorID", instructorID).Msg("Error executing dashboard query")
		return nil, err
	}
	defer rows.Close()

	summaries := make([]models.EnrollmentSummary, 0)
	for rows.Next() {
		var (
			s      models.EnrollmentSummary
			status string
		)
		err := rows.Scan(
			&s.ID, &s.StudentID, &s.CourseID, &status, &s.EnrolledAt,
			&s.StudentName, &s.StudentEmail, &s.CourseTitle,
			&s.TotalLessons, &s.CompletedLessons,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning dashboard row: %w", err)
		}
		if s.Status, err = models.ParseEnrollmentState(status); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dashboard rows: %w", err)
	}

	return summaries, nil
}
