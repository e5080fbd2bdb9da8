package dto

import (
	"time"

	"github.com/gocode/elearning/internal/app/models"
)

// Messages returned by the enroll endpoint
const (
	EnrollMsgRequestSent     = "Request sent"
	EnrollMsgAlreadyEnrolled = "Already enrolled"
)

// EnrollResponse reports the caller's enrollment status after an enroll request
type EnrollResponse struct {
	Status string `json:"status" example:"pending"`
	Msg    string `json:"msg" example:"Request sent"`
}

// NewEnrollResponse builds the enroll reply for the resulting state
func NewEnrollResponse(state models.EnrollmentState) EnrollResponse {
	msg := EnrollMsgRequestSent
	if state == models.EnrollmentActive {
		msg = EnrollMsgAlreadyEnrolled
	}
	return EnrollResponse{Status: string(state), Msg: msg}
}

// ManageEnrollmentRequest carries the instructor's decision
type ManageEnrollmentRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject" example:"approve"`
}

// ManageEnrollmentResponse reports the enrollment status after a decision
type ManageEnrollmentResponse struct {
	Status    string `json:"status" example:"success"`
	NewStatus string `json:"new_status" example:"active"`
}

// CompleteLessonResponse is returned when a lesson is marked complete
type CompleteLessonResponse struct {
	Status string `json:"status" example:"success"`
}

// DashboardItem is one row of the instructor's monitor dashboard
type DashboardItem struct {
	ID           int64     `json:"id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	CourseTitle  string    `json:"course_title"`
	EnrolledAt   time.Time `json:"enrolled_at"`
	Progress     int       `json:"progress" example:"66"`
	IsCompleted  bool      `json:"is_completed"`
	Status       string    `json:"status" example:"active"`
}

// NewDashboardItem derives progress and completion for a dashboard row
func NewDashboardItem(s models.EnrollmentSummary) DashboardItem {
	progress := s.Progress()
	return DashboardItem{
		ID:           s.ID,
		StudentName:  s.StudentName,
		StudentEmail: s.StudentEmail,
		CourseTitle:  s.CourseTitle,
		EnrolledAt:   s.EnrolledAt,
		Progress:     progress,
		IsCompleted:  progress == 100,
		Status:       string(s.Status),
	}
}
