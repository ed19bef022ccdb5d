package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/coursedeck/syllabus-tracker/gen/ent"
	"github.com/coursedeck/syllabus-tracker/gen/ent/course"
	"github.com/coursedeck/syllabus-tracker/internal/common"
	"github.com/coursedeck/syllabus-tracker/internal/entity"
	"github.com/coursedeck/syllabus-tracker/internal/parser"
	"github.com/coursedeck/syllabus-tracker/internal/utils"
)

type CourseRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCourseRepository(client *ent.Client, logger *slog.Logger) *CourseRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseRepository{client: client, logger: logger}
}

// CreateFromMetadata persists the course extracted from a syllabus.
// Sentinel values ("Unknown Course Code" etc.) are stored as-is; they
// are real output, not an error condition.
func (r *CourseRepository) CreateFromMetadata(ctx context.Context, userID uuid.UUID, md parser.CourseMetadata) (*entity.Course, error) {
	row, err := r.client.Course.Create().
		SetUserID(userID).
		SetCode(md.Code).
		SetName(md.Name).
		SetTerm(md.Term).
		SetDescription(md.Description).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create course", "user_id", userID, "code", md.Code, "error", err)
		return nil, common.WrapError(err, "create course")
	}
	r.logger.Info("course created", "course_id", row.ID, "code", row.Code, "term", row.Term)
	return utils.ToCourse(row), nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	row, err := r.client.Course.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get course")
	}
	return utils.ToCourse(row), nil
}

// ListByUser returns the user's courses, most recently created first.
func (r *CourseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Course, error) {
	rows, err := r.client.Course.Query().
		Where(course.UserID(userID)).
		Order(ent.Desc(course.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list courses")
	}
	out := make([]*entity.Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToCourse(row))
	}
	return out, nil
}
