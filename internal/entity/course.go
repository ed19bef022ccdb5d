package entity

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a course for data transfer between layers.
type Course struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Term        string    `json:"term"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
