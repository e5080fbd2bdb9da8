package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	appAuth "github.com/gocode/elearning/internal/app/auth"
	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/pkg/apperrors"
	"github.com/gocode/elearning/internal/pkg/filestorage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type courseFixture struct {
	*enrollmentFixture
	storage *filestorage.LocalStorage
	courses CourseService
}

func newCourseFixture(t *testing.T, gated bool) *courseFixture {
	t.Helper()

	f := newEnrollmentFixture(t)
	storage, err := filestorage.NewLocalStorage(t.TempDir(), "/uploads", filestorage.ImageExtensions...)
	require.NoError(t, err)

	store := f.store
	authz := appAuth.NewAuthorizationService(fakeUserRepo{store}, fakeCourseRepo{store})
	svc := NewCourseService(
		fakeCourseRepo{store},
		fakeLessonRepo{store},
		fakeEnrollmentRepo{store},
		authz,
		storage,
		CourseOptions{RequireEnrollmentForContent: gated},
		zerolog.Nop(),
	)
	return &courseFixture{enrollmentFixture: f, storage: storage, courses: svc}
}

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("thumbnail", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["thumbnail"][0]
}

func TestListCoursesViewerStatus(t *testing.T) {
	f := newCourseFixture(t, false)
	ctx := context.Background()
	newer := f.store.addCourse(f.instructor.ID, "Databases")

	items, err := f.courses.ListCourses(ctx, models.Principal{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, "grace", items[0].InstructorName)
	assert.Nil(t, items[0].EnrollmentStatus)
	assert.Nil(t, items[1].EnrollmentStatus)

	_, err = f.enrollment.RequestEnrollment(ctx, principal(f.student), f.course.ID)
	require.NoError(t, err)

	items, err = f.courses.ListCourses(ctx, principal(f.student))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].EnrollmentStatus)
	require.NotNil(t, items[1].EnrollmentStatus)
	assert.Equal(t, "pending", *items[1].EnrollmentStatus)
}

func TestListCoursesEmptyCatalog(t *testing.T) {
	store := newMemStore()
	svc := NewCourseService(fakeCourseRepo{store}, fakeLessonRepo{store}, fakeEnrollmentRepo{store}, nil, nil, CourseOptions{}, zerolog.Nop())

	items, err := svc.ListCourses(context.Background(), models.Principal{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListMyCourses(t *testing.T) {
	f := newCourseFixture(t, false)
	ctx := context.Background()
	f.store.addCourse(f.instructor.ID, "Databases")

	items, err := f.courses.ListMyCourses(ctx, principal(f.student))
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = f.enrollment.RequestEnrollment(ctx, principal(f.student), f.course.ID)
	require.NoError(t, err)

	items, err = f.courses.ListMyCourses(ctx, principal(f.student))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, f.course.ID, items[0].ID)

	_, err = f.courses.ListMyCourses(ctx, models.Principal{})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestGetCourseDetailOrdersLessonsAndTracksProgress(t *testing.T) {
	f := newCourseFixture(t, false)
	ctx := context.Background()
	intro := f.store.addLesson(f.course.ID, "Intro", 0)

	require.NoError(t, f.progress.MarkLessonComplete(ctx, principal(f.student), f.lessons[1].ID))

	detail, err := f.courses.GetCourseDetail(ctx, f.course.ID, principal(f.student))
	require.NoError(t, err)
	assert.False(t, detail.IsEnrolled)
	assert.Equal(t, "grace", detail.InstructorName)
	require.Len(t, detail.Lessons, 4)
	assert.Equal(t, intro.ID, detail.Lessons[0].ID)
	assert.Equal(t, "Lexing", detail.Lessons[1].Title)
	assert.True(t, detail.Lessons[2].IsCompleted)
	assert.False(t, detail.Lessons[3].IsCompleted)
	assert.Equal(t, "Parsing body", detail.Lessons[2].Content)
}

func TestGetCourseDetailIsEnrolledOnlyWhenActive(t *testing.T) {
	f := newCourseFixture(t, false)
	ctx := context.Background()

	_, err := f.enrollment.RequestEnrollment(ctx, principal(f.student), f.course.ID)
	require.NoError(t, err)
	detail, err := f.courses.GetCourseDetail(ctx, f.course.ID, principal(f.student))
	require.NoError(t, err)
	assert.False(t, detail.IsEnrolled)

	_, err = f.enrollment.ManageEnrollment(ctx, f.enrollmentID(t), principal(f.instructor), "approve")
	require.NoError(t, err)
	detail, err = f.courses.GetCourseDetail(ctx, f.course.ID, principal(f.student))
	require.NoError(t, err)
	assert.True(t, detail.IsEnrolled)
}

func TestGetCourseDetailGatesContent(t *testing.T) {
	f := newCourseFixture(t, true)
	ctx := context.Background()

	detail, err := f.courses.GetCourseDetail(ctx, f.course.ID, principal(f.student))
	require.NoError(t, err)
	require.NotEmpty(t, detail.Lessons)
	assert.Equal(t, "Lexing", detail.Lessons[0].Title)
	assert.Empty(t, detail.Lessons[0].Content)

	owner, err := f.courses.GetCourseDetail(ctx, f.course.ID, principal(f.instructor))
	require.NoError(t, err)
	assert.Equal(t, "Lexing body", owner.Lessons[0].Content)

	_, err = f.enrollment.RequestEnrollment(ctx, principal(f.student), f.course.ID)
	require.NoError(t, err)
	_, err = f.enrollment.ManageEnrollment(ctx, f.enrollmentID(t), principal(f.instructor), "approve")
	require.NoError(t, err)

	detail, err = f.courses.GetCourseDetail(ctx, f.course.ID, principal(f.student))
	require.NoError(t, err)
	assert.Equal(t, "Lexing body", detail.Lessons[0].Content)
}

func TestGetCourseDetailNotFound(t *testing.T) {
	f := newCourseFixture(t, false)

	_, err := f.courses.GetCourseDetail(context.Background(), 9999, models.Principal{})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCreateCourse(t *testing.T) {
	f := newCourseFixture(t, false)
	ctx := context.Background()

	item, err := f.courses.CreateCourse(ctx, principal(f.instructor), &dto.CreateCourseRequest{Title: "  Networks ", Price: "19.99"})
	require.NoError(t, err)
	assert.Equal(t, "Networks", item.Title)
	assert.Equal(t, "19.99", item.Price)
	assert.Equal(t, "grace", item.InstructorName)
	assert.Nil(t, item.EnrollmentStatus)

	_, err = f.courses.CreateCourse(ctx, principal(f.student), &dto.CreateCourseRequest{Title: "Nope"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = f.courses.CreateCourse(ctx, principal(f.instructor), &dto.CreateCourseRequest{Title: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateCourseRejectsBadPrices(t *testing.T) {
	f := newCourseFixture(t, false)
	ctx := context.Background()

	for _, price := range []string{"-5", "123456789", "1.234", "abc"} {
		_, err := f.courses.CreateCourse(ctx, principal(f.instructor), &dto.CreateCourseRequest{Title: "Networks", Price: price})
		require.ErrorIs(t, err, apperrors.ErrValidationFailed, price)

		var customErr *apperrors.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, "price", customErr.Details["field"])
	}

	item, err := f.courses.CreateCourse(ctx, principal(f.instructor), &dto.CreateCourseRequest{Title: "Networks", Price: "999999.99"})
	require.NoError(t, err)
	assert.Equal(t, "999999.99", item.Price)
}

func TestDeleteCourseCascades(t *testing.T) {
	f := newCourseFixture(t, false)
	ctx := context.Background()

	_, err := f.enrollment.RequestEnrollment(ctx, principal(f.student), f.course.ID)
	require.NoError(t, err)

	err = f.courses.DeleteCourse(ctx, f.course.ID, principal(f.student))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, f.courses.DeleteCourse(ctx, f.course.ID, principal(f.instructor)))
	assert.Equal(t, 0, f.store.countEnrollments(f.student.ID, f.course.ID))

	_, err = f.courses.GetCourseDetail(ctx, f.course.ID, models.Principal{})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	err = f.courses.DeleteCourse(ctx, f.course.ID, principal(f.instructor))
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestAddLesson(t *testing.T) {
	f := newCourseFixture(t, false)
	ctx := context.Background()
	video := "https://videos.example.com/ir"

	item, err := f.courses.AddLesson(ctx, f.course.ID, principal(f.instructor), &dto.CreateLessonRequest{Title: "IR", Content: "SSA", VideoURL: &video, Order: 2})
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, 2, item.Order)
	assert.False(t, item.IsCompleted)

	admin := models.Principal{UserID: f.store.addUser("root", models.RoleAdmin).ID, Role: models.RoleAdmin}
	_, err = f.courses.AddLesson(ctx, f.course.ID, admin, &dto.CreateLessonRequest{Title: "Admin note"})
	require.NoError(t, err)

	_, err = f.courses.AddLesson(ctx, f.course.ID, principal(f.student), &dto.CreateLessonRequest{Title: "Nope"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = f.courses.AddLesson(ctx, f.course.ID, principal(f.instructor), &dto.CreateLessonRequest{Title: "Bad", Order: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateThumbnailReplacesPreviousFile(t *testing.T) {
	f := newCourseFixture(t, false)
	ctx := context.Background()

	first, err := f.courses.UpdateThumbnail(ctx, f.course.ID, principal(f.instructor), uploadHeader(t, "a.png", []byte("one")))
	require.NoError(t, err)
	require.NotNil(t, first.Thumbnail)
	assert.True(t, strings.HasPrefix(*first.Thumbnail, "/uploads/thumbnails/"))
	firstPath := f.storage.GetFullPath(*first.Thumbnail)
	assert.FileExists(t, firstPath)

	second, err := f.courses.UpdateThumbnail(ctx, f.course.ID, principal(f.instructor), uploadHeader(t, "b.jpg", []byte("two")))
	require.NoError(t, err)
	assert.NotEqual(t, *first.Thumbnail, *second.Thumbnail)
	_, statErr := os.Stat(firstPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpdateThumbnailRejectsUnsupportedType(t *testing.T) {
	f := newCourseFixture(t, false)

	_, err := f.courses.UpdateThumbnail(context.Background(), f.course.ID, principal(f.instructor), uploadHeader(t, "notes.txt", []byte("x")))
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, "thumbnail", custom.Details["field"])
}
