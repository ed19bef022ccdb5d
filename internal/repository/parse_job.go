package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coursedeck/syllabus-tracker/constants"
	"github.com/coursedeck/syllabus-tracker/gen/ent"
	"github.com/coursedeck/syllabus-tracker/gen/ent/parsejob"
	"github.com/coursedeck/syllabus-tracker/internal/common"
	"github.com/coursedeck/syllabus-tracker/internal/entity"
	"github.com/coursedeck/syllabus-tracker/internal/utils"
)

type ParseJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewParseJobRepository(client *ent.Client, logger *slog.Logger) *ParseJobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseJobRepository{client: client, logger: logger}
}

// Start opens a RUNNING job for a file before the pipeline touches it.
func (r *ParseJobRepository) Start(ctx context.Context, fileID, userID uuid.UUID, format constants.DocumentFormat) (*entity.ParseJob, error) {
	row, err := r.client.ParseJob.Create().
		SetFileID(fileID).
		SetUserID(userID).
		SetFormat(string(format)).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start parse job", "file_id", fileID, "error", err)
		return nil, common.WrapError(err, "start parse job")
	}
	r.logger.Info("parse job started", "job_id", row.ID, "file_id", fileID, "format", format)
	return utils.ToParseJob(row), nil
}

// MarkTextExtracted records the extracted text once the document stage
// succeeds, before course/assignment extraction runs.
func (r *ParseJobRepository) MarkTextExtracted(ctx context.Context, jobID uuid.UUID, text string) error {
	err := r.client.ParseJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusTextOK)).
		SetExtractedText(text).
		Exec(ctx)
	if err != nil {
		return common.WrapError(err, "mark text extracted")
	}
	return nil
}

// FinishSuccess closes a job after a full pipeline run, keeping the
// structured result for audit and re-tagging.
func (r *ParseJobRepository) FinishSuccess(ctx context.Context, jobID, courseID uuid.UUID, result json.RawMessage, assignments int, modelName string) error {
	upd := r.client.ParseJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusParseOK)).
		SetCourseID(courseID).
		SetExtractedJSON(result).
		SetAssignmentsCount(assignments).
		SetFinishedAt(time.Now().UTC())
	if modelName != "" {
		upd.SetModelName(modelName)
	}
	if err := upd.Exec(ctx); err != nil {
		return common.WrapError(err, "finish parse job")
	}
	r.logger.Info("parse job finished", "job_id", jobID, "course_id", courseID, "assignments", assignments)
	return nil
}

// FinishFailure closes a job with the terminal error message.
func (r *ParseJobRepository) FinishFailure(ctx context.Context, jobID uuid.UUID, cause error) error {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	err := r.client.ParseJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(msg).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		return common.WrapError(err, "fail parse job")
	}
	r.logger.Warn("parse job failed", "job_id", jobID, "error", msg)
	return nil
}

func (r *ParseJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ParseJob, error) {
	row, err := r.client.ParseJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get parse job")
	}
	return utils.ToParseJob(row), nil
}

// ListByFile returns a file's jobs, newest first.
func (r *ParseJobRepository) ListByFile(ctx context.Context, fileID uuid.UUID) ([]*entity.ParseJob, error) {
	rows, err := r.client.ParseJob.Query().
		Where(parsejob.FileID(fileID)).
		Order(ent.Desc(parsejob.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list parse jobs")
	}
	out := make([]*entity.ParseJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToParseJob(row))
	}
	return out, nil
}
