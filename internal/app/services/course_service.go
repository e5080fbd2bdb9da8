package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	appAuth "github.com/gocode/elearning/internal/app/auth"
	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/app/repositories"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/gocode/elearning/internal/pkg/filestorage"
	"github.com/gocode/elearning/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// thumbnailDir is the storage subdirectory for course thumbnails
const thumbnailDir = "thumbnails"

// CourseService serves the catalog and lets instructors manage their courses
type CourseService interface {
	ListCourses(ctx context.Context, viewer models.Principal) ([]dto.CourseListItem, error)
	ListMyCourses(ctx context.Context, viewer models.Principal) ([]dto.CourseListItem, error)
	GetCourseDetail(ctx context.Context, courseID int64, viewer models.Principal) (*dto.CourseDetail, error)
	CreateCourse(ctx context.Context, actor models.Principal, req *dto.CreateCourseRequest) (*dto.CourseListItem, error)
	DeleteCourse(ctx context.Context, courseID int64, actor models.Principal) error
	AddLesson(ctx context.Context, courseID int64, actor models.Principal, req *dto.CreateLessonRequest) (*dto.LessonItem, error)
	UpdateThumbnail(ctx context.Context, courseID int64, actor models.Principal, file *multipart.FileHeader) (*dto.CourseListItem, error)
}

// CourseOptions tune catalog behaviour
type CourseOptions struct {
	// RequireEnrollmentForContent hides lesson content and video from viewers that are
	// neither the instructor nor actively enrolled
	RequireEnrollmentForContent bool
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo     repositories.ICourseRepository
	lessonRepo     repositories.ILessonRepository
	enrollmentRepo repositories.IEnrollmentRepository
	authzService   *appAuth.AuthorizationService
	fileStorage    filestorage.FileStorage
	options        CourseOptions
	logger         zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	lessonRepo repositories.ILessonRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	authzService *appAuth.AuthorizationService,
	fileStorage filestorage.FileStorage,
	options CourseOptions,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
		authzService:   authzService,
		fileStorage:    fileStorage,
		options:        options,
		logger:         logger,
	}
}

// ListCourses lists every course, newest first. Anonymous viewers get a null enrollment_status.
func (s *courseServiceImpl) ListCourses(ctx context.Context, viewer models.Principal) ([]dto.CourseListItem, error) {
	var viewerID int64
	if !viewer.Anonymous() {
		viewerID = viewer.UserID
	}

	rows, err := s.courseRepo.List(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return dto.NewCourseListItems(rows), nil
}

// ListMyCourses lists the courses the viewer has requested, whatever the enrollment status
func (s *courseServiceImpl) ListMyCourses(ctx context.Context, viewer models.Principal) ([]dto.CourseListItem, error) {
	if viewer.Anonymous() {
		return nil, apperrors.ErrUnauthenticated
	}

	rows, err := s.courseRepo.ListByStudent(ctx, viewer.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrolled courses: %w", err)
	}
	return dto.NewCourseListItems(rows), nil
}

// GetCourseDetail returns the course with its lessons in display order
func (s *courseServiceImpl) GetCourseDetail(ctx context.Context, courseID int64, viewer models.Principal) (*dto.CourseDetail, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	state := models.EnrollmentAbsent
	if !viewer.Anonymous() {
		if state, err = s.enrollmentRepo.GetState(ctx, viewer.UserID, courseID); err != nil {
			return nil, fmt.Errorf("failed to load enrollment: %w", err)
		}
	}

	lessons, err := s.lessonRepo.ListByCourse(ctx, courseID, viewer.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	showContent := appAuth.CanViewLessonContent(course, viewer, state, s.options.RequireEnrollmentForContent)

	detail := &dto.CourseDetail{
		ID:             course.ID,
		Title:          course.Title,
		Description:    course.Description,
		Thumbnail:      course.Thumbnail,
		Price:          course.Price,
		InstructorName: course.InstructorName,
		Lessons:        make([]dto.LessonItem, 0, len(lessons)),
		IsEnrolled:     state == models.EnrollmentActive,
	}
	for _, l := range lessons {
		item := dto.NewLessonItem(l)
		if !showContent {
			item.Content = ""
			item.VideoURL = nil
		}
		detail.Lessons = append(detail.Lessons, item)
	}

	return detail, nil
}

// CreateCourse publishes a course owned by the actor
func (s *courseServiceImpl) CreateCourse(ctx context.Context, actor models.Principal, req *dto.CreateCourseRequest) (*dto.CourseListItem, error) {
	if err := s.authzService.ValidateInstructor(ctx, actor.UserID); err != nil {
		return nil, err
	}

	course := &models.Course{
		InstructorID: actor.UserID,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Price:        strings.TrimSpace(req.Price),
	}
	if course.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}
	priceCheck := validation.NewStringValidation(course.Price).
		WithRequired(false).
		WithPattern(validation.CompiledPatterns.Price)
	if !priceCheck.Validate() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"price must be a non-negative amount below 1000000 with at most 2 decimals").
			WithDetails(fieldDetail("price"))
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	created, err := s.courseRepo.GetByID(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseID", created.ID).Int64("instructorID", actor.UserID).Msg("Course created")
	item := dto.NewCourseListItem(models.CourseListing{Course: *created})
	return &item, nil
}

// DeleteCourse removes the course together with its lessons, enrollments and thumbnail
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, courseID int64, actor models.Principal) error {
	course, err := s.authzService.ValidateCourseOwnership(ctx, courseID, actor)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		return err
	}

	if course.Thumbnail != nil {
		if err := s.fileStorage.DeleteFile(*course.Thumbnail); err != nil {
			s.logger.Warn().Err(err).Int64("courseID", courseID).Msg("Failed to delete course thumbnail")
		}
	}

	s.logger.Info().Int64("courseID", courseID).Int64("userID", actor.UserID).Msg("Course deleted")
	return nil
}

// AddLesson appends a lesson to a course the actor owns
func (s *courseServiceImpl) AddLesson(ctx context.Context, courseID int64, actor models.Principal, req *dto.CreateLessonRequest) (*dto.LessonItem, error) {
	if _, err := s.authzService.ValidateCourseOwnership(ctx, courseID, actor); err != nil {
		return nil, err
	}
	if req.Order < 0 {
		return nil, apperrors.NewValidationError("order must not be negative")
	}

	lesson := &models.Lesson{
		CourseID: courseID,
		Title:    strings.TrimSpace(req.Title),
		Content:  req.Content,
		VideoURL: req.VideoURL,
		Order:    req.Order,
	}
	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}

	item := dto.NewLessonItem(models.LessonWithProgress{Lesson: *lesson})
	return &item, nil
}

// UpdateThumbnail stores a new thumbnail image and replaces the previous one
func (s *courseServiceImpl) UpdateThumbnail(ctx context.Context, courseID int64, actor models.Principal, file *multipart.FileHeader) (*dto.CourseListItem, error) {
	course, err := s.authzService.ValidateCourseOwnership(ctx, courseID, actor)
	if err != nil {
		return nil, err
	}

	url, err := s.fileStorage.SaveFileWithPath(file, thumbnailDir)
	if err != nil {
		if errors.Is(err, filestorage.ErrUnsupportedFileType) {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error()).
				WithDetails(fieldDetail("thumbnail"))
		}
		return nil, fmt.Errorf("failed to store thumbnail: %w", err)
	}

	if err := s.courseRepo.SetThumbnail(ctx, courseID, url); err != nil {
		_ = s.fileStorage.DeleteFile(url)
		return nil, err
	}

	if course.Thumbnail != nil {
		if err := s.fileStorage.DeleteFile(*course.Thumbnail); err != nil {
			s.logger.Warn().Err(err).Int64("courseID", courseID).Msg("Failed to delete previous thumbnail")
		}
	}

	course.Thumbnail = &url
	item := dto.NewCourseListItem(models.CourseListing{Course: *course})
	return &item, nil
}
