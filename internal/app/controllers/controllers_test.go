package controllers

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/middleware"
	"github.com/gocode/elearning/internal/pkg/auth"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testJWT = auth.NewJWTService(auth.JWTConfig{SecretKey: "controller-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})

func bearer(t *testing.T, id int64, role models.Role) string {
	t.Helper()
	token, _, err := testJWT.GenerateAccessToken(&models.User{ID: id, Email: "u@example.com", Username: "u", Role: role})
	require.NoError(t, err)
	return "Bearer " + token
}

func newEngine() (*gin.Engine, *middleware.AuthMiddleware) {
	return gin.New(), middleware.NewAuthMiddleware(testJWT)
}

func perform(r http.Handler, method, path, authHeader string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performJSON(r http.Handler, method, path, authHeader, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return perform(r, method, path, authHeader, reader, "application/json")
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

// stubCourseService implements services.CourseService
type stubCourseService struct {
	list      func(viewer models.Principal) ([]dto.CourseListItem, error)
	mine      func(viewer models.Principal) ([]dto.CourseListItem, error)
	detail    func(courseID int64, viewer models.Principal) (*dto.CourseDetail, error)
	create    func(actor models.Principal, req *dto.CreateCourseRequest) (*dto.CourseListItem, error)
	remove    func(courseID int64, actor models.Principal) error
	addLesson func(courseID int64, actor models.Principal, req *dto.CreateLessonRequest) (*dto.LessonItem, error)
	thumbnail func(courseID int64, actor models.Principal, file *multipart.FileHeader) (*dto.CourseListItem, error)
}

func (s *stubCourseService) ListCourses(_ context.Context, viewer models.Principal) ([]dto.CourseListItem, error) {
	return s.list(viewer)
}

func (s *stubCourseService) ListMyCourses(_ context.Context, viewer models.Principal) ([]dto.CourseListItem, error) {
	return s.mine(viewer)
}

func (s *stubCourseService) GetCourseDetail(_ context.Context, courseID int64, viewer models.Principal) (*dto.CourseDetail, error) {
	return s.detail(courseID, viewer)
}

func (s *stubCourseService) CreateCourse(_ context.Context, actor models.Principal, req *dto.CreateCourseRequest) (*dto.CourseListItem, error) {
	return s.create(actor, req)
}

func (s *stubCourseService) DeleteCourse(_ context.Context, courseID int64, actor models.Principal) error {
	return s.remove(courseID, actor)
}

func (s *stubCourseService) AddLesson(_ context.Context, courseID int64, actor models.Principal, req *dto.CreateLessonRequest) (*dto.LessonItem, error) {
	return s.addLesson(courseID, actor, req)
}

func (s *stubCourseService) UpdateThumbnail(_ context.Context, courseID int64, actor models.Principal, file *multipart.FileHeader) (*dto.CourseListItem, error) {
	return s.thumbnail(courseID, actor, file)
}

// stubEnrollmentService implements services.EnrollmentService
type stubEnrollmentService struct {
	request func(student models.Principal, courseID int64) (models.EnrollmentState, error)
	manage  func(enrollmentID int64, actor models.Principal, action string) (models.EnrollmentState, error)
}

func (s *stubEnrollmentService) RequestEnrollment(_ context.Context, student models.Principal, courseID int64) (models.EnrollmentState, error) {
	return s.request(student, courseID)
}

func (s *stubEnrollmentService) ManageEnrollment(_ context.Context, enrollmentID int64, actor models.Principal, action string) (models.EnrollmentState, error) {
	return s.manage(enrollmentID, actor, action)
}

// stubProgressService implements services.ProgressService
type stubProgressService struct {
	complete func(student models.Principal, lessonID int64) error
}

func (s *stubProgressService) MarkLessonComplete(_ context.Context, student models.Principal, lessonID int64) error {
	return s.complete(student, lessonID)
}

// stubMonitorService implements services.MonitorService
type stubMonitorService struct {
	dashboard func(instructor models.Principal) ([]dto.DashboardItem, error)
}

func (s *stubMonitorService) GetDashboard(_ context.Context, instructor models.Principal) ([]dto.DashboardItem, error) {
	return s.dashboard(instructor)
}

// stubAuthService implements services.AuthService
type stubAuthService struct {
	register func(req *dto.RegisterRequest) (*dto.TokenResponse, error)
	login    func(req *dto.LoginRequest) (*dto.TokenResponse, error)
	profile  func(userID int64) (*dto.UserResponse, error)
}

func (s *stubAuthService) Register(_ context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	return s.register(req)
}

func (s *stubAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.login(req)
}

func (s *stubAuthService) GetProfile(_ context.Context, userID int64) (*dto.UserResponse, error) {
	return s.profile(userID)
}
