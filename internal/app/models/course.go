package models

import "time"

// Course is owned by its instructor; deleting it cascades to lessons and enrollments.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Price        string    `json:"price" db:"price"` // NUMERIC(8,2) rendered as text, e.g. "19.99"
	Thumbnail    *string   `json:"thumbnail,omitempty" db:"thumbnail"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Populated by joins
	InstructorName string `json:"instructorName,omitempty" db:"-"`
}

// CourseListing is a course annotated with the viewer's enrollment state
type CourseListing struct {
	Course
	ViewerStatus EnrollmentState
}
