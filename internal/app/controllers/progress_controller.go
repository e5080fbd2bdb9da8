package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/app/services"
	"github.com/gocode/elearning/internal/middleware"
)

// ProgressController records lesson completion
type ProgressController struct {
	progressService services.ProgressService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService services.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// CompleteLesson marks a lesson complete for the caller
// @Summary Complete lesson
// @Description Marks the lesson completed for the caller. Repeating the call is harmless.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID" Format(int64)
// @Success 200 {object} dto.CompleteLessonResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /courses/lessons/{id}/complete/ [post]
func (c *ProgressController) CompleteLesson(ctx *gin.Context) {
	lessonID, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.progressService.MarkLessonComplete(ctx.Request.Context(), middleware.CurrentPrincipal(ctx), lessonID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CompleteLessonResponse{Status: "success"})
}
