package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coursedeck/syllabus-tracker/gen/ent"
	"github.com/coursedeck/syllabus-tracker/gen/ent/assignment"
	"github.com/coursedeck/syllabus-tracker/internal/common"
	"github.com/coursedeck/syllabus-tracker/internal/entity"
	"github.com/coursedeck/syllabus-tracker/internal/parser"
	"github.com/coursedeck/syllabus-tracker/internal/utils"
)

type AssignmentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAssignmentRepository(client *ent.Client, logger *slog.Logger) *AssignmentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssignmentRepository{client: client, logger: logger}
}

// CreateBatch persists parsed assignments for a course in a single
// transaction, preserving discovery order. Records with an unparsable
// dueDate keep it null rather than being dropped.
func (r *AssignmentRepository) CreateBatch(ctx context.Context, courseID uuid.UUID, records []parser.AssignmentRecord) ([]*entity.Assignment, error) {
	if len(records) == 0 {
		return []*entity.Assignment{}, nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(err, "begin assignments tx")
	}

	builders := make([]*ent.AssignmentCreate, 0, len(records))
	for _, rec := range records {
		b := tx.Assignment.Create().
			SetCourseID(courseID).
			SetTitle(rec.Title).
			SetStatus(rec.Status).
			SetTags(rec.Tags)
		if rec.Description != "" {
			b.SetDescription(rec.Description)
		}
		if due, ok := utils.ParseYMD(rec.DueDate); ok {
			b.SetDueDate(due)
		}
		builders = append(builders, b)
	}

	rows, err := tx.Assignment.CreateBulk(builders...).Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create assignments", "course_id", courseID, "count", len(records), "error", err)
		return nil, common.WrapError(err, "create assignments")
	}
	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(err, "commit assignments tx")
	}

	r.logger.Info("assignments created", "course_id", courseID, "count", len(rows))
	out := make([]*entity.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToAssignment(row))
	}
	return out, nil
}

type AssignmentFilter struct {
	From   *time.Time
	To     *time.Time
	Status string
}

// ListByCourse returns a course's assignments ordered by due date
// (nulls last, per dialect default), optionally windowed by due date
// and filtered by status.
func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID, f AssignmentFilter) ([]*entity.Assignment, error) {
	q := r.client.Assignment.Query().
		Where(assignment.CourseID(courseID))
	if f.From != nil {
		q = q.Where(assignment.DueDateGTE(*f.From))
	}
	if f.To != nil {
		q = q.Where(assignment.DueDateLTE(*f.To))
	}
	if f.Status != "" {
		q = q.Where(assignment.Status(f.Status))
	}
	rows, err := q.
		Order(ent.Asc(assignment.FieldDueDate), ent.Asc(assignment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list assignments")
	}
	out := make([]*entity.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToAssignment(row))
	}
	return out, nil
}
