package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/app/services"
	"github.com/gocode/elearning/internal/middleware"
	"github.com/rs/zerolog"
)

// CourseController serves the catalog and course management endpoints
type CourseController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// ListCourses lists all courses
// @Summary List courses
// @Description Lists every course, newest first. With a valid token each course carries the caller's enrollment status; anonymous callers get null.
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseListItem
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/ [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	items, err := c.courseService.ListCourses(ctx.Request.Context(), middleware.CurrentPrincipal(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// ListMyCourses lists the caller's courses
// @Summary My courses
// @Description Lists the courses the caller has requested to join, whatever the enrollment status
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseListItem
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /courses/my-courses/ [get]
func (c *CourseController) ListMyCourses(ctx *gin.Context) {
	items, err := c.courseService.ListMyCourses(ctx.Request.Context(), middleware.CurrentPrincipal(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetCourseDetail returns a course with its lessons
// @Summary Course detail
// @Description Returns the course with its lessons in display order and the caller's completion flags
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64)
// @Success 200 {object} dto.CourseDetail
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/full/ [get]
func (c *CourseController) GetCourseDetail(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.courseService.GetCourseDetail(ctx.Request.Context(), courseID, middleware.CurrentPrincipal(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// CreateCourse publishes a new course
// @Summary Create course
// @Description Creates a course owned by the calling instructor
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course"
// @Success 201 {object} dto.APIResponse{data=dto.CourseListItem} "Course created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Not an instructor"
// @Router /courses/ [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	item, err := c.courseService.CreateCourse(ctx.Request.Context(), middleware.CurrentPrincipal(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// DeleteCourse removes a course
// @Summary Delete course
// @Description Deletes the course with its lessons, enrollments and progress
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the course owner"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/ [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), courseID, middleware.CurrentPrincipal(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Course deleted"}))
}

// AddLesson appends a lesson to a course
// @Summary Add lesson
// @Description Adds a lesson to a course the caller owns
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64)
// @Param request body dto.CreateLessonRequest true "Lesson"
// @Success 201 {object} dto.APIResponse{data=dto.LessonItem} "Lesson created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Not the course owner"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/lessons/ [post]
func (c *CourseController) AddLesson(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateLessonRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	item, err := c.courseService.AddLesson(ctx.Request.Context(), courseID, middleware.CurrentPrincipal(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// UploadThumbnail replaces the course thumbnail
// @Summary Upload thumbnail
// @Description Uploads a course thumbnail image (jpg, png, gif or webp)
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64)
// @Param thumbnail formData file true "Thumbnail image"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListItem} "Thumbnail updated"
// @Failure 400 {object} dto.ErrorResponse "Missing or unsupported file"
// @Failure 403 {object} dto.ErrorResponse "Not the course owner"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/thumbnail/ [post]
func (c *CourseController) UploadThumbnail(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("thumbnail")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "thumbnail is required").WithField("thumbnail")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.courseService.UpdateThumbnail(ctx.Request.Context(), courseID, middleware.CurrentPrincipal(ctx), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}
