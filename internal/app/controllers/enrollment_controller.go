package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/app/services"
	"github.com/gocode/elearning/internal/middleware"
)

// EnrollmentController handles enrollment requests and instructor decisions
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// Enroll requests access to a course
// @Summary Request enrollment
// @Description Creates a pending enrollment, or re-opens a rejected one. Pending and active enrollments are reported unchanged.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64)
// @Success 200 {object} dto.EnrollResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/enroll/ [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	courseID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	state, err := c.enrollmentService.RequestEnrollment(ctx.Request.Context(), middleware.CurrentPrincipal(ctx), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewEnrollResponse(state))
}

// Manage applies an instructor decision
// @Summary Approve or reject an enrollment
// @Description Only the instructor of the enrollment's course may decide
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID" Format(int64)
// @Param request body dto.ManageEnrollmentRequest true "Decision"
// @Success 200 {object} dto.ManageEnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown action"
// @Failure 403 {object} dto.ErrorResponse "Not the course instructor"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /courses/enrollment/{id}/manage/ [post]
func (c *EnrollmentController) Manage(ctx *gin.Context) {
	enrollmentID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ManageEnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	state, err := c.enrollmentService.ManageEnrollment(ctx.Request.Context(), enrollmentID, middleware.CurrentPrincipal(ctx), req.Action)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ManageEnrollmentResponse{Status: "success", NewStatus: string(state)})
}
