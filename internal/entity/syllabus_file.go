package entity

import (
	"time"

	"github.com/google/uuid"
)

// SyllabusFile represents an uploaded syllabus document.
type SyllabusFile struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	CourseID    *uuid.UUID `json:"course_id,omitempty"`
	Filename    string     `json:"filename"`
	FileExt     string     `json:"file_ext"`
	FileSize    int        `json:"file_size"`
	ContentHash []byte     `json:"content_hash"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}
