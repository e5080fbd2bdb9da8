package dto

import (
	"github.com/gocode/elearning/internal/app/models"
)

// CourseListItem is one entry of the course list and my-courses endpoints
type CourseListItem struct {
	ID               int64   `json:"id" example:"1"`
	Title            string  `json:"title" example:"Intro to Go"`
	Description      string  `json:"description"`
	Thumbnail        *string `json:"thumbnail" example:"/uploads/thumbnails/3f1c.png"`
	Price            string  `json:"price" example:"19.99"`
	InstructorName   string  `json:"instructor_name" example:"gopher"`
	EnrollmentStatus *string `json:"enrollment_status" example:"pending"`
}

// LessonItem is a lesson inside the course detail response
type LessonItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	VideoURL    *string `json:"video_url"`
	Order       int     `json:"order"`
	IsCompleted bool    `json:"is_completed"`
}

// CourseDetail is the full course view with its ordered lessons
type CourseDetail struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Thumbnail      *string      `json:"thumbnail"`
	Price          string       `json:"price"`
	InstructorName string       `json:"instructor_name"`
	Lessons        []LessonItem `json:"lessons"`
	IsEnrolled     bool         `json:"is_enrolled"`
}

// CreateCourseRequest represents a request to publish a new course
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"omitempty,numeric" example:"19.99"`
}

// CreateLessonRequest represents a request to add a lesson to a course
type CreateLessonRequest struct {
	Title    string  `json:"title" binding:"required,max=200"`
	Content  string  `json:"content"`
	VideoURL *string `json:"video_url" binding:"omitempty,url"`
	Order    int     `json:"order" binding:"min=0"`
}

// NewCourseListItem maps a course listing row onto its response shape
func NewCourseListItem(c models.CourseListing) CourseListItem {
	return CourseListItem{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Thumbnail:        c.Thumbnail,
		Price:            c.Price,
		InstructorName:   c.InstructorName,
		EnrollmentStatus: c.ViewerStatus.Ptr(),
	}
}

// NewCourseListItems maps listing rows, always returning a non-nil slice
func NewCourseListItems(rows []models.CourseListing) []CourseListItem {
	items := make([]CourseListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, NewCourseListItem(row))
	}
	return items
}

// NewLessonItem maps a lesson with the viewer's progress
func NewLessonItem(l models.LessonWithProgress) LessonItem {
	return LessonItem{
		ID:          l.ID,
		Title:       l.Title,
		Content:     l.Content,
		VideoURL:    l.VideoURL,
		Order:       l.Order,
		IsCompleted: l.Completed,
	}
}
