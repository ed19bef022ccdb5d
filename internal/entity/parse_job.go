package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParseJob represents one pipeline run over a syllabus file.
type ParseJob struct {
	ID               uuid.UUID       `json:"id"`
	FileID           uuid.UUID       `json:"file_id"`
	UserID           uuid.UUID       `json:"user_id"`
	CourseID         *uuid.UUID      `json:"course_id,omitempty"`
	Format           string          `json:"format"`
	StartedAt        time.Time       `json:"started_at"`
	FinishedAt       *time.Time      `json:"finished_at,omitempty"`
	Status           *string         `json:"status,omitempty"`
	ErrorMessage     *string         `json:"error_message,omitempty"`
	ExtractedText    *string         `json:"extracted_text,omitempty"`
	ExtractedJSON    json.RawMessage `json:"extracted_json,omitempty"`
	ModelName        *string         `json:"model_name,omitempty"`
	AssignmentsCount int             `json:"assignments_count"`
}
