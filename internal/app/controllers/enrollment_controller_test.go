package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrollmentRouter(svc *stubEnrollmentService) *gin.Engine {
	r, authMW := newEngine()
	ctrl := NewEnrollmentController(svc)
	courses := r.Group("/api/courses", authMW.JWTAuth())
	courses.POST("/:id/enroll/", ctrl.Enroll)
	courses.POST("/enrollment/:id/manage/", ctrl.Manage)
	return r
}

func TestEnrollResponses(t *testing.T) {
	states := map[int64]models.EnrollmentState{1: models.EnrollmentPending, 2: models.EnrollmentActive}
	var gotStudent models.Principal
	r := enrollmentRouter(&stubEnrollmentService{
		request: func(student models.Principal, courseID int64) (models.EnrollmentState, error) {
			gotStudent = student
			if state, ok := states[courseID]; ok {
				return state, nil
			}
			return models.EnrollmentAbsent, apperrors.ErrCourseNotFound
		},
	})
	token := bearer(t, 11, models.RoleStudent)

	w := performJSON(r, http.MethodPost, "/api/courses/1/enroll/", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"pending","msg":"Request sent"}`, w.Body.String())
	assert.Equal(t, models.Principal{UserID: 11, Role: models.RoleStudent}, gotStudent)

	w = performJSON(r, http.MethodPost, "/api/courses/2/enroll/", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"active","msg":"Already enrolled"}`, w.Body.String())

	w = performJSON(r, http.MethodPost, "/api/courses/3/enroll/", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(r, http.MethodPost, "/api/courses/abc/enroll/", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(r, http.MethodPost, "/api/courses/1/enroll/", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestManageEnrollment(t *testing.T) {
	r := enrollmentRouter(&stubEnrollmentService{
		manage: func(enrollmentID int64, actor models.Principal, action string) (models.EnrollmentState, error) {
			if actor.UserID != 5 {
				return models.EnrollmentAbsent, apperrors.ErrNotCourseInstructor
			}
			if action == "approve" {
				return models.EnrollmentActive, nil
			}
			return models.EnrollmentRejected, nil
		},
	})

	w := performJSON(r, http.MethodPost, "/api/courses/enrollment/9/manage/", bearer(t, 5, models.RoleInstructor), `{"action":"approve"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","new_status":"active"}`, w.Body.String())

	w = performJSON(r, http.MethodPost, "/api/courses/enrollment/9/manage/", bearer(t, 5, models.RoleInstructor), `{"action":"reject"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","new_status":"rejected"}`, w.Body.String())

	w = performJSON(r, http.MethodPost, "/api/courses/enrollment/9/manage/", bearer(t, 6, models.RoleStudent), `{"action":"approve"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, decodeErrorBody(t, w).Code)
}

func TestManageEnrollmentRejectsUnknownAction(t *testing.T) {
	called := false
	r := enrollmentRouter(&stubEnrollmentService{
		manage: func(int64, models.Principal, string) (models.EnrollmentState, error) {
			called = true
			return models.EnrollmentActive, nil
		},
	})

	w := performJSON(r, http.MethodPost, "/api/courses/enrollment/9/manage/", bearer(t, 5, models.RoleInstructor), `{"action":"promote"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "action", decodeErrorBody(t, w).Field)
	assert.False(t, called)
}
