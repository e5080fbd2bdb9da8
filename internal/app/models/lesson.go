package models

import "time"

// Lesson belongs to a course. Order drives display ordering and need not be unique.
type Lesson struct {
	ID       int64   `json:"id" db:"id"`
	CourseID int64   `json:"courseId" db:"course_id"`
	Title    string  `json:"title" db:"title"`
	Content  string  `json:"content" db:"content"`
	VideoURL *string `json:"videoUrl,omitempty" db:"video_url"`
	Order    int     `json:"order" db:"order"`
}

// LessonWithProgress carries the viewer's completion flag for a lesson
type LessonWithProgress struct {
	Lesson
	Completed bool
}

// LessonProgress marks a student's completion of one lesson; at most one row per (student, lesson)
type LessonProgress struct {
	StudentID int64     `json:"studentId" db:"student_id"`
	LessonID  int64     `json:"lessonId" db:"lesson_id"`
	Completed bool      `json:"completed" db:"completed"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
