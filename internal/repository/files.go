package repository

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/coursedeck/syllabus-tracker/constants"
	"github.com/coursedeck/syllabus-tracker/gen/ent"
	"github.com/coursedeck/syllabus-tracker/gen/ent/syllabusfile"
	"github.com/coursedeck/syllabus-tracker/internal/common"
	"github.com/coursedeck/syllabus-tracker/internal/entity"
	"github.com/coursedeck/syllabus-tracker/internal/utils"
)

type SyllabusFileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSyllabusFileRepository(client *ent.Client, logger *slog.Logger) *SyllabusFileRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyllabusFileRepository{client: client, logger: logger}
}

// RegisterUpload records an uploaded syllabus, deduplicating on
// (user_id, content hash): re-uploading the same bytes returns the
// existing row instead of creating a duplicate.
func (r *SyllabusFileRepository) RegisterUpload(ctx context.Context, userID uuid.UUID, filename string, content []byte) (*entity.SyllabusFile, bool, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, false, common.ErrUnsupportedFormat
	}

	sum := sha256.Sum256(content)
	hash := sum[:]

	existing, err := r.client.SyllabusFile.Query().
		Where(syllabusfile.UserID(userID), syllabusfile.ContentHash(hash)).
		Only(ctx)
	if err == nil {
		r.logger.Info("syllabus file already registered", "file_id", existing.ID, "filename", filename)
		return utils.ToSyllabusFile(existing), false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, common.WrapError(err, "lookup syllabus file")
	}

	row, err := r.client.SyllabusFile.Create().
		SetUserID(userID).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(len(content)).
		SetContentHash(hash).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to register syllabus file", "filename", filename, "error", err)
		return nil, false, common.WrapError(err, "register syllabus file")
	}
	r.logger.Info("syllabus file registered", "file_id", row.ID, "filename", filename, "size", row.FileSize)
	return utils.ToSyllabusFile(row), true, nil
}

func (r *SyllabusFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SyllabusFile, error) {
	row, err := r.client.SyllabusFile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get syllabus file")
	}
	return utils.ToSyllabusFile(row), nil
}

// AttachCourse links a file to the course parsed out of it.
func (r *SyllabusFileRepository) AttachCourse(ctx context.Context, fileID, courseID uuid.UUID) error {
	err := r.client.SyllabusFile.UpdateOneID(fileID).
		SetCourseID(courseID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(err, "attach course to file")
	}
	return nil
}
