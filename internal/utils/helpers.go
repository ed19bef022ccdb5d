package utils

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/coursedeck/syllabus-tracker/gen/ent"
	syllabusv1 "github.com/coursedeck/syllabus-tracker/gen/proto/syllabus/v1"
	"github.com/coursedeck/syllabus-tracker/internal/entity"
)

// ParseYMD parses an optional YYYY-MM-DD string. A nil pointer, empty
// string, or malformed value yields ok=false; callers store null.
func ParseYMD(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatYMD renders an optional date back to YYYY-MM-DD ("" for nil).
func FormatYMD(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func ToCourse(row *ent.Course) *entity.Course {
	return &entity.Course{
		ID:          row.ID,
		UserID:      row.UserID,
		Code:        row.Code,
		Name:        row.Name,
		Term:        row.Term,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func ToAssignment(row *ent.Assignment) *entity.Assignment {
	a := &entity.Assignment{
		ID:        row.ID,
		CourseID:  row.CourseID,
		Title:     row.Title,
		Status:    row.Status,
		Tags:      row.Tags,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description != nil {
		a.Description = *row.Description
	}
	a.DueDate = row.DueDate
	return a
}

func ToSyllabusFile(row *ent.SyllabusFile) *entity.SyllabusFile {
	return &entity.SyllabusFile{
		ID:          row.ID,
		UserID:      row.UserID,
		CourseID:    row.CourseID,
		Filename:    row.Filename,
		FileExt:     row.FileExt,
		FileSize:    row.FileSize,
		ContentHash: row.ContentHash,
		UploadedAt:  row.UploadedAt,
	}
}

func ToParseJob(row *ent.ParseJob) *entity.ParseJob {
	return &entity.ParseJob{
		ID:               row.ID,
		FileID:           row.FileID,
		UserID:           row.UserID,
		CourseID:         row.CourseID,
		Format:           row.Format,
		StartedAt:        row.StartedAt,
		FinishedAt:       row.FinishedAt,
		Status:           row.Status,
		ErrorMessage:     row.ErrorMessage,
		ExtractedText:    row.ExtractedText,
		ExtractedJSON:    row.ExtractedJSON,
		ModelName:        row.ModelName,
		AssignmentsCount: row.AssignmentsCount,
	}
}

func ToPBCourse(c *entity.Course) *syllabusv1.Course {
	return &syllabusv1.Course{
		Id:          c.ID.String(),
		UserId:      c.UserID.String(),
		Code:        c.Code,
		Name:        c.Name,
		Term:        c.Term,
		Description: c.Description,
		CreatedAt:   timestamppb.New(c.CreatedAt),
	}
}

func ToPBAssignment(a *entity.Assignment) *syllabusv1.Assignment {
	return &syllabusv1.Assignment{
		Id:          a.ID.String(),
		CourseId:    a.CourseID.String(),
		Title:       a.Title,
		Description: a.Description,
		DueDate:     FormatYMD(a.DueDate),
		Status:      a.Status,
		Tags:        a.Tags,
	}
}

func ToPBAssignments(in []*entity.Assignment) []*syllabusv1.Assignment {
	out := make([]*syllabusv1.Assignment, 0, len(in))
	for _, a := range in {
		out = append(out, ToPBAssignment(a))
	}
	return out
}
