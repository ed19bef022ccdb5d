package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/coursedeck/syllabus-tracker/constants"
	syllabusv1 "github.com/coursedeck/syllabus-tracker/gen/proto/syllabus/v1"
	"github.com/coursedeck/syllabus-tracker/internal/common"
	"github.com/coursedeck/syllabus-tracker/internal/entity"
	"github.com/coursedeck/syllabus-tracker/internal/extract"
	"github.com/coursedeck/syllabus-tracker/internal/parser"
	"github.com/coursedeck/syllabus-tracker/internal/pipeline"
	"github.com/coursedeck/syllabus-tracker/internal/utils"
)

// ParseSyllabus runs the full pipeline over uploaded document bytes and
// persists the resulting course and assignments. A syllabus with zero
// assignments is a successful parse, not an error.
func (s *SyllabusService) ParseSyllabus(ctx context.Context, req *syllabusv1.ParseSyllabusRequest) (*syllabusv1.ParseSyllabusResponse, error) {
	userID, err := parseUUIDField(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	content := req.GetContent()
	if len(content) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	file, created, err := s.files.RegisterUpload(ctx, userID, filename, content)
	if err != nil {
		if errors.Is(err, common.ErrUnsupportedFormat) {
			return nil, unsupportedFormatError(filename)
		}
		s.logger.Error("register upload failed", "user_id", userID, "filename", filename, "error", err)
		return nil, status.Error(codes.Internal, "register upload failed")
	}
	s.logger.Info("syllabus upload accepted",
		"user_id", userID, "file_id", file.ID, "filename", filename, "deduplicated", !created,
	)

	format := constants.MapExtToFormat(file.FileExt)
	job, err := s.jobs.Start(ctx, file.ID, userID, format)
	if err != nil {
		s.logger.Error("start parse job failed", "file_id", file.ID, "error", err)
		return nil, status.Error(codes.Internal, "start parse job failed")
	}

	text, err := s.extractor.Extract(ctx, extract.RawDocument{Bytes: content, Filename: filename})
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err)
		return nil, mapPipelineError(err, filename)
	}
	if err := s.jobs.MarkTextExtracted(ctx, job.ID, text.Content); err != nil {
		s.logger.Warn("mark text extracted failed", "job_id", job.ID, "error", err)
	}

	result, err := s.pipe.RunText(ctx, text.Content)
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err)
		return nil, mapPipelineError(err, filename)
	}

	course, assignments, err := s.persistResult(ctx, userID, result)
	if err != nil {
		_ = s.jobs.FinishFailure(ctx, job.ID, err)
		s.logger.Error("persist parse result failed", "job_id", job.ID, "error", err)
		return nil, status.Error(codes.Internal, "persist parse result failed")
	}

	if err := s.files.AttachCourse(ctx, file.ID, course.ID); err != nil {
		s.logger.Warn("attach course to file failed", "file_id", file.ID, "course_id", course.ID, "error", err)
	}
	raw, _ := json.Marshal(result)
	if err := s.jobs.FinishSuccess(ctx, job.ID, course.ID, raw, len(assignments), s.modelName); err != nil {
		s.logger.Warn("finish parse job failed", "job_id", job.ID, "error", err)
	}

	return &syllabusv1.ParseSyllabusResponse{
		Course:           utils.ToPBCourse(course),
		Assignments:      utils.ToPBAssignments(assignments),
		FileId:           file.ID.String(),
		JobId:            job.ID.String(),
		AssignmentsCount: int32(len(assignments)),
	}, nil
}

// ParseSyllabusText accepts already-extracted text. When the caller also
// supplies assignment candidates, the deterministic scan and the AI
// fallback are skipped and the candidates are normalized as-is.
func (s *SyllabusService) ParseSyllabusText(ctx context.Context, req *syllabusv1.ParseSyllabusTextRequest) (*syllabusv1.ParseSyllabusResponse, error) {
	userID, err := parseUUIDField(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	text := req.GetText()
	if strings.TrimSpace(text) == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}

	var result *parser.ParsedSyllabusResult
	if cands := req.GetCandidates(); len(cands) > 0 {
		in := make([]pipeline.Candidate, 0, len(cands))
		for _, c := range cands {
			in = append(in, pipeline.Candidate{Title: c.GetTitle(), DueDate: c.GetDueDate()})
		}
		result, err = s.pipe.RunPreParsed(ctx, text, in)
	} else {
		result, err = s.pipe.RunText(ctx, text)
	}
	if err != nil {
		return nil, mapPipelineError(err, "")
	}

	course, assignments, err := s.persistResult(ctx, userID, result)
	if err != nil {
		s.logger.Error("persist parse result failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "persist parse result failed")
	}

	return &syllabusv1.ParseSyllabusResponse{
		Course:           utils.ToPBCourse(course),
		Assignments:      utils.ToPBAssignments(assignments),
		AssignmentsCount: int32(len(assignments)),
	}, nil
}

func (s *SyllabusService) persistResult(ctx context.Context, userID uuid.UUID, result *parser.ParsedSyllabusResult) (*entity.Course, []*entity.Assignment, error) {
	course, err := s.courses.CreateFromMetadata(ctx, userID, result.Course)
	if err != nil {
		return nil, nil, err
	}
	assignments, err := s.assignments.CreateBatch(ctx, course.ID, result.Assignments)
	if err != nil {
		return nil, nil, err
	}
	return course, assignments, nil
}

func unsupportedFormatError(filename string) error {
	return status.Errorf(codes.InvalidArgument,
		"unsupported document format %q; supported formats: %s",
		filename, strings.Join(constants.FileTypes, ", "))
}

// mapPipelineError translates pipeline sentinels into gRPC codes. Input
// documents the service cannot work with are the caller's problem;
// everything else is ours.
func mapPipelineError(err error, filename string) error {
	switch {
	case errors.Is(err, common.ErrUnsupportedFormat):
		return unsupportedFormatError(filename)
	case errors.Is(err, common.ErrExtractionFailed):
		return status.Error(codes.InvalidArgument, fmt.Sprintf("could not extract usable text: %v", err))
	default:
		return status.Error(codes.Internal, "syllabus parsing failed")
	}
}

func mapStoreError(err error, resource string) error {
	if errors.Is(err, common.ErrNotFound) {
		return status.Errorf(codes.NotFound, "%s not found", resource)
	}
	return status.Error(codes.Internal, "request failed")
}
