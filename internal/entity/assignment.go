package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assignment represents an assignment for data transfer between layers.
// DueDate is nil when the pipeline could not resolve a date token.
type Assignment struct {
	ID          uuid.UUID  `json:"id"`
	CourseID    uuid.UUID  `json:"course_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
