package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	syllabusv1 "github.com/coursedeck/syllabus-tracker/gen/proto/syllabus/v1"
	"github.com/coursedeck/syllabus-tracker/internal/export"
	"github.com/coursedeck/syllabus-tracker/internal/extract"
	"github.com/coursedeck/syllabus-tracker/internal/pipeline"
	"github.com/coursedeck/syllabus-tracker/internal/repository"
	"github.com/coursedeck/syllabus-tracker/internal/utils"
)

// SyllabusService is the gRPC surface over the parsing pipeline and the
// course/assignment store.
type SyllabusService struct {
	syllabusv1.UnimplementedSyllabusServiceServer
	extractor   extract.TextExtractor
	pipe        *pipeline.Pipeline
	courses     *repository.CourseRepository
	assignments *repository.AssignmentRepository
	files       *repository.SyllabusFileRepository
	jobs        *repository.ParseJobRepository
	exporter    *export.Service
	modelName   string // recorded on jobs when the AI fallback is enabled
	logger      *slog.Logger
}

type Deps struct {
	Extractor   extract.TextExtractor
	Pipeline    *pipeline.Pipeline
	Courses     *repository.CourseRepository
	Assignments *repository.AssignmentRepository
	Files       *repository.SyllabusFileRepository
	Jobs        *repository.ParseJobRepository
	Exporter    *export.Service
	ModelName   string
}

func NewSyllabusService(d Deps, logger *slog.Logger) *SyllabusService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyllabusService{
		extractor:   d.Extractor,
		pipe:        d.Pipeline,
		courses:     d.Courses,
		assignments: d.Assignments,
		files:       d.Files,
		jobs:        d.Jobs,
		exporter:    d.Exporter,
		modelName:   d.ModelName,
		logger:      logger,
	}
}

func (s *SyllabusService) ListCourses(ctx context.Context, req *syllabusv1.ListCoursesRequest) (*syllabusv1.ListCoursesResponse, error) {
	userID, err := parseUUIDField(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	rows, err := s.courses.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list courses failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "list courses failed")
	}
	out := make([]*syllabusv1.Course, 0, len(rows))
	for _, c := range rows {
		out = append(out, utils.ToPBCourse(c))
	}
	return &syllabusv1.ListCoursesResponse{Courses: out}, nil
}

func (s *SyllabusService) ListAssignments(ctx context.Context, req *syllabusv1.ListAssignmentsRequest) (*syllabusv1.ListAssignmentsResponse, error) {
	courseID, err := parseUUIDField(req.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}

	var filter repository.AssignmentFilter
	if filter.From, err = parseDateField(req.GetFrom(), "from"); err != nil {
		return nil, err
	}
	if filter.To, err = parseDateField(req.GetTo(), "to"); err != nil {
		return nil, err
	}
	filter.Status = req.GetStatus()

	rows, err := s.assignments.ListByCourse(ctx, courseID, filter)
	if err != nil {
		s.logger.Error("list assignments failed", "course_id", courseID, "error", err)
		return nil, status.Error(codes.Internal, "list assignments failed")
	}
	return &syllabusv1.ListAssignmentsResponse{Assignments: utils.ToPBAssignments(rows)}, nil
}

func (s *SyllabusService) ExportAssignments(ctx context.Context, req *syllabusv1.ExportAssignmentsRequest) (*syllabusv1.ExportAssignmentsResponse, error) {
	courseID, err := parseUUIDField(req.GetCourseId(), "course_id")
	if err != nil {
		return nil, err
	}
	content, filename, err := s.exporter.ExportScheduleXLSX(ctx, courseID)
	if err != nil {
		s.logger.Error("export failed", "course_id", courseID, "error", err)
		return nil, mapStoreError(err, "course")
	}
	return &syllabusv1.ExportAssignmentsResponse{
		Filename: filename,
		Content:  content,
	}, nil
}

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func parseDateField(raw, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be YYYY-MM-DD, got %q", field, raw))
	}
	return &t, nil
}
