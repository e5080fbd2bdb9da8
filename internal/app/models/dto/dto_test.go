package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gocode/elearning/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDashboardItem(t *testing.T) {
	enrolledAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	row := models.EnrollmentSummary{
		Enrollment:       models.Enrollment{ID: 4, Status: models.EnrollmentActive, EnrolledAt: enrolledAt},
		StudentName:      "ada",
		StudentEmail:     "ada@example.com",
		CourseTitle:      "Go",
		TotalLessons:     3,
		CompletedLessons: 2,
	}

	item := NewDashboardItem(row)
	assert.Equal(t, 66, item.Progress)
	assert.False(t, item.IsCompleted)
	assert.Equal(t, "active", item.Status)
	assert.Equal(t, enrolledAt, item.EnrolledAt)

	row.CompletedLessons = 3
	item = NewDashboardItem(row)
	assert.Equal(t, 100, item.Progress)
	assert.True(t, item.IsCompleted)

	row.TotalLessons, row.CompletedLessons = 0, 0
	item = NewDashboardItem(row)
	assert.Equal(t, 0, item.Progress)
	assert.False(t, item.IsCompleted)
}

func TestNewEnrollResponse(t *testing.T) {
	assert.Equal(t, EnrollResponse{Status: "pending", Msg: EnrollMsgRequestSent}, NewEnrollResponse(models.EnrollmentPending))
	assert.Equal(t, EnrollResponse{Status: "active", Msg: EnrollMsgAlreadyEnrolled}, NewEnrollResponse(models.EnrollmentActive))
}

func TestNewCourseListItemsStatus(t *testing.T) {
	items := NewCourseListItems([]models.CourseListing{
		{Course: models.Course{ID: 1}},
		{Course: models.Course{ID: 2}, ViewerStatus: models.EnrollmentRejected},
	})
	require.Len(t, items, 2)
	assert.Nil(t, items[0].EnrollmentStatus)
	require.NotNil(t, items[1].EnrollmentStatus)
	assert.Equal(t, "rejected", *items[1].EnrollmentStatus)

	assert.NotNil(t, NewCourseListItems(nil))
}

func TestHandleValidationError(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(ManageEnrollmentRequest{Action: "archive"})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "action", detail.Field)
	assert.Equal(t, "action must be one of: approve, reject", detail.Message)
}

func TestHandleValidationErrorMalformed(t *testing.T) {
	detail := HandleValidationError(assert.AnError)
	assert.Equal(t, ErrorCodeInvalidRequest, detail.Code)
}

func jsonKeys(t *testing.T, v interface{}) []string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	return keys
}

func TestClientFieldNames(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		keys []string
	}{
		{"course list item", CourseListItem{}, []string{"id", "title", "description", "thumbnail", "price", "instructor_name", "enrollment_status"}},
		{"course detail", CourseDetail{}, []string{"id", "title", "description", "thumbnail", "price", "instructor_name", "lessons", "is_enrolled"}},
		{"lesson", LessonItem{}, []string{"id", "title", "content", "video_url", "order", "is_completed"}},
		{"dashboard row", DashboardItem{}, []string{"id", "student_name", "student_email", "course_title", "enrolled_at", "progress", "is_completed", "status"}},
		{"manage reply", ManageEnrollmentResponse{}, []string{"status", "new_status"}},
		{"enroll reply", EnrollResponse{}, []string{"status", "msg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.keys, jsonKeys(t, tt.v))
		})
	}
}
