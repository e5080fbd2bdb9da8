package services

import (
	"context"

	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/repositories"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/gocode/elearning/internal/pkg/email"
	"github.com/rs/zerolog"
)

// EnrollmentService drives the enrollment lifecycle between students and courses
type EnrollmentService interface {
	RequestEnrollment(ctx context.Context, student models.Principal, courseID int64) (models.EnrollmentState, error)
	ManageEnrollment(ctx context.Context, enrollmentID int64, actor models.Principal, action string) (models.EnrollmentState, error)
}

// enrollmentServiceImpl implements EnrollmentService
type enrollmentServiceImpl struct {
	enrollmentRepo repositories.IEnrollmentRepository
	courseRepo     repositories.ICourseRepository
	userRepo       repositories.IUserRepository
	notifier       email.EmailService
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService. notifier may be nil.
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	courseRepo repositories.ICourseRepository,
	userRepo repositories.IUserRepository,
	notifier email.EmailService,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// RequestEnrollment asks to join a course. A missing or rejected enrollment becomes
// pending; pending and active enrollments are returned unchanged.
func (s *enrollmentServiceImpl) RequestEnrollment(ctx context.Context, student models.Principal, courseID int64) (models.EnrollmentState, error) {
	if student.Anonymous() {
		return models.EnrollmentAbsent, apperrors.ErrUnauthenticated
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return models.EnrollmentAbsent, err
	}

	enrollment, changed, err := s.enrollmentRepo.Request(ctx, student.UserID, courseID)
	if err != nil {
		return models.EnrollmentAbsent, err
	}

	s.logger.Info().
		Int64("enrollmentID", enrollment.ID).
		Int64("studentID", student.UserID).
		Int64("courseID", courseID).
		Str("status", string(enrollment.Status)).
		Bool("changed", changed).
		Msg("Enrollment requested")

	if changed {
		s.notifyInstructor(ctx, course, student.UserID)
	}
	return enrollment.Status, nil
}

// ManageEnrollment applies the course instructor's decision. Unknown actions are rejected
// before anything is read or written.
func (s *enrollmentServiceImpl) ManageEnrollment(ctx context.Context, enrollmentID int64, actor models.Principal, action string) (models.EnrollmentState, error) {
	act, err := models.ParseEnrollmentAction(action)
	if err != nil {
		return models.EnrollmentAbsent, err
	}
	if actor.Anonymous() {
		return models.EnrollmentAbsent, apperrors.ErrUnauthenticated
	}

	var previous models.EnrollmentState
	managed, err := s.enrollmentRepo.Decide(ctx, enrollmentID, func(e *models.ManagedEnrollment) (models.EnrollmentState, error) {
		if e.InstructorID != actor.UserID {
			return e.Status, apperrors.ErrNotCourseInstructor
		}
		previous = e.Status
		return e.Status.Apply(act)
	})
	if err != nil {
		return models.EnrollmentAbsent, err
	}

	s.logger.Info().
		Int64("enrollmentID", enrollmentID).
		Int64("instructorID", actor.UserID).
		Str("action", string(act)).
		Str("from", string(previous)).
		Str("to", string(managed.Status)).
		Msg("Enrollment decision applied")

	if previous != managed.Status {
		s.notifyStudent(managed)
	}
	return managed.Status, nil
}

func (s *enrollmentServiceImpl) notifyInstructor(ctx context.Context, course *models.Course, studentID int64) {
	if s.notifier == nil {
		return
	}

	instructor, err := s.userRepo.GetByID(ctx, course.InstructorID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("courseID", course.ID).Msg("Could not load instructor for enrollment notification")
		return
	}
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("studentID", studentID).Msg("Could not load student for enrollment notification")
		return
	}

	if err := s.notifier.SendEnrollmentRequestedEmail(instructor.Email, instructor.Username, student.Username, course.Title); err != nil {
		s.logger.Warn().Err(err).Int64("courseID", course.ID).Msg("Failed to notify instructor about enrollment request")
	}
}

func (s *enrollmentServiceImpl) notifyStudent(e *models.ManagedEnrollment) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.SendEnrollmentDecisionEmail(e.StudentEmail, e.StudentName, e.CourseTitle, string(e.Status)); err != nil {
		s.logger.Warn().Err(err).Int64("enrollmentID", e.ID).Str("status", string(e.Status)).Msg("Failed to notify student about enrollment decision")
	}
}
