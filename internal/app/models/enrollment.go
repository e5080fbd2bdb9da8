package models

import (
	"fmt"
	"time"

	"github.com/gocode/elearning/internal/pkg/apperrors"
)

// EnrollmentState is the approval state between a student and a course.
// EnrollmentAbsent stands for "no enrollment row yet" and is never persisted.
type EnrollmentState string

const (
	EnrollmentAbsent   EnrollmentState = ""
	EnrollmentPending  EnrollmentState = "pending"
	EnrollmentActive   EnrollmentState = "active"
	EnrollmentRejected EnrollmentState = "rejected"
)

// ParseEnrollmentState converts a stored status value. The empty string maps to EnrollmentAbsent.
func ParseEnrollmentState(raw string) (EnrollmentState, error) {
	switch s := EnrollmentState(raw); s {
	case EnrollmentAbsent, EnrollmentPending, EnrollmentActive, EnrollmentRejected:
		return s, nil
	default:
		return EnrollmentAbsent, fmt.Errorf("unknown enrollment status %q", raw)
	}
}

// Exists reports whether the state is backed by a stored enrollment
func (s EnrollmentState) Exists() bool {
	return s != EnrollmentAbsent
}

// Ptr returns nil for EnrollmentAbsent so JSON renders it as null
func (s EnrollmentState) Ptr() *string {
	if !s.Exists() {
		return nil
	}
	v := string(s)
	return &v
}

// OnRequest returns the state after the student asks to enroll.
// Absent and rejected enrollments move to pending; pending and active ones stay put.
func (s EnrollmentState) OnRequest() EnrollmentState {
	switch s {
	case EnrollmentAbsent, EnrollmentRejected:
		return EnrollmentPending
	default:
		return s
	}
}

// EnrollmentAction is an instructor decision on an enrollment
type EnrollmentAction string

const (
	ActionApprove EnrollmentAction = "approve"
	ActionReject  EnrollmentAction = "reject"
)

// ParseEnrollmentAction rejects anything but approve and reject
func ParseEnrollmentAction(raw string) (EnrollmentAction, error) {
	switch a := EnrollmentAction(raw); a {
	case ActionApprove, ActionReject:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q, expected approve or reject", apperrors.ErrInvalidEnrollmentStep, raw)
	}
}

// Apply returns the state after an instructor decision. Decisions override any stored
// state, including demoting an active enrollment.
func (s EnrollmentState) Apply(action EnrollmentAction) (EnrollmentState, error) {
	if !s.Exists() {
		return s, apperrors.ErrEnrollmentNotFound
	}

	switch action {
	case ActionApprove:
		return EnrollmentActive, nil
	case ActionReject:
		return EnrollmentRejected, nil
	default:
		return s, fmt.Errorf("%w: %q", apperrors.ErrInvalidEnrollmentStep, action)
	}
}

// Enrollment links a student to a course; unique per (student, course)
type Enrollment struct {
	ID         int64           `json:"id" db:"id"`
	StudentID  int64           `json:"studentId" db:"student_id"`
	CourseID   int64           `json:"courseId" db:"course_id"`
	Status     EnrollmentState `json:"status" db:"status"`
	EnrolledAt time.Time       `json:"enrolledAt" db:"enrolled_at"`
}

// ManagedEnrollment is an enrollment together with the parties needed to authorize and
// notify a decision on it
type ManagedEnrollment struct {
	Enrollment
	InstructorID int64
	CourseTitle  string
	StudentName  string
	StudentEmail string
}

// EnrollmentSummary is one dashboard row: an enrollment plus lesson counts for its course
type EnrollmentSummary struct {
	Enrollment
	StudentName      string
	StudentEmail     string
	CourseTitle      string
	TotalLessons     int64
	CompletedLessons int64
}

// Progress is the round-down percentage of the course's lessons the student completed
func (e EnrollmentSummary) Progress() int {
	return ProgressPercent(e.CompletedLessons, e.TotalLessons)
}

// ProgressPercent returns floor(completed*100/total), or 0 for a course without lessons
func ProgressPercent(completed, total int64) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed > total {
		completed = total
	}
	return int(completed * 100 / total)
}
