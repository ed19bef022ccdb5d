// Package pipeline orchestrates one syllabus analysis run: text
// extraction, course metadata, deterministic assignment scanning, the AI
// fallback when the scan comes up empty, and per-assignment tagging and
// date normalization.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coursedeck/syllabus-tracker/constants"
	"github.com/coursedeck/syllabus-tracker/internal/common"
	"github.com/coursedeck/syllabus-tracker/internal/extract"
	"github.com/coursedeck/syllabus-tracker/internal/llm"
	"github.com/coursedeck/syllabus-tracker/internal/parser"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Config holds thresholds and behavior flags for the pipeline.
type Config struct {
	// MinTextLength is the minimum extracted-text size (characters)
	// below which a document is rejected as not meaningful. Default 100.
	MinTextLength int
	// AITimeout bounds the single fallback call. Default 30s.
	AITimeout time.Duration
}

// Candidate is a pre-parsed assignment supplied by an upstream caller on
// the alternate entry path: the title plus the raw due-date string as it
// appeared in the source.
type Candidate struct {
	Title   string
	DueDate string
}

// Pipeline runs the full syllabus analysis. It holds no state between
// invocations; concurrent runs over different documents are independent.
type Pipeline struct {
	logger    *slog.Logger
	cfg       Config
	extractor extract.TextExtractor
	fallback  llm.FallbackExtractor // nil disables the AI stage
}

func New(logger *slog.Logger, cfg Config, tx extract.TextExtractor, fb llm.FallbackExtractor) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = 100
	}
	if cfg.AITimeout <= 0 {
		cfg.AITimeout = 30 * time.Second
	}
	return &Pipeline{logger: logger, cfg: cfg, extractor: tx, fallback: fb}
}

// Run processes one raw document end to end. Fails with
// common.ErrUnsupportedFormat or common.ErrExtractionFailed when no
// usable text can be obtained; never fails because of the AI stage.
func (p *Pipeline) Run(ctx context.Context, doc extract.RawDocument) (*parser.ParsedSyllabusResult, error) {
	rid := uuid.New().String()
	start := time.Now()
	p.logger.Info("pipeline.run.start", "req_id", rid, "filename", doc.Filename, "bytes", len(doc.Bytes))

	text, err := p.extractor.Extract(ctx, doc)
	if err != nil {
		p.logger.Error("pipeline.extract.failed", "req_id", rid, "filename", doc.Filename, "error", err)
		return nil, err
	}
	if n := len(strings.TrimSpace(text.Content)); n < p.cfg.MinTextLength {
		p.logger.Error("pipeline.extract.too_short", "req_id", rid, "filename", doc.Filename, "chars", n)
		return nil, fmt.Errorf("%w: extracted text too short to be meaningful (%d chars)", common.ErrExtractionFailed, n)
	}
	p.logger.Info("pipeline.extract.ok",
		"req_id", rid, "format", text.Format, "chars", len(text.Content), "pages", text.Pages,
	)

	result := p.analyze(ctx, rid, text.Content)
	p.logger.Info("pipeline.run.ok",
		"req_id", rid,
		"course_code", result.Course.Code,
		"assignments", len(result.Assignments),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// RunText processes text that was already extracted upstream. Same
// semantics as Run minus the extraction stage.
func (p *Pipeline) RunText(ctx context.Context, text string) (*parser.ParsedSyllabusResult, error) {
	rid := uuid.New().String()
	if n := len(strings.TrimSpace(text)); n < p.cfg.MinTextLength {
		return nil, fmt.Errorf("%w: extracted text too short to be meaningful (%d chars)", common.ErrExtractionFailed, n)
	}
	return p.analyze(ctx, rid, text), nil
}

// RunPreParsed is the alternate entry path: assignment candidates were
// already identified by the caller, so the deterministic scan and the AI
// fallback are both skipped. The pipeline only extracts course metadata
// and fills in per-assignment defaults, trusting the caller's extraction.
func (p *Pipeline) RunPreParsed(ctx context.Context, text string, candidates []Candidate) (*parser.ParsedSyllabusResult, error) {
	rid := uuid.New().String()
	meta := parser.ExtractCourseMetadata(text)

	records := make([]parser.AssignmentRecord, 0, len(candidates))
	for _, c := range candidates {
		title := parser.CleanTitle(c.Title)
		if len(title) <= 3 {
			continue
		}
		var due *string
		if iso := parser.NormalizeDueDate(c.DueDate, meta.Term); iso != "" {
			due = &iso
		}
		records = append(records, parser.AssignmentRecord{
			Title:       title,
			Description: parser.DescribeTitle(title),
			DueDate:     due,
			Status:      string(constants.StatusPending),
			Tags:        parser.TagsForTitle(title),
		})
	}

	p.logger.Info("pipeline.preparsed.ok",
		"req_id", rid, "course_code", meta.Code,
		"candidates", len(candidates), "assignments", len(records),
	)
	return &parser.ParsedSyllabusResult{Course: meta, Assignments: records}, nil
}

// analyze performs metadata extraction, the deterministic scan, and the
// gated AI fallback over already-validated text.
func (p *Pipeline) analyze(ctx context.Context, rid, text string) *parser.ParsedSyllabusResult {
	meta := parser.ExtractCourseMetadata(text)
	records := parser.ExtractAssignments(text, meta.Term)
	p.logger.Info("pipeline.deterministic.ok", "req_id", rid, "assignments", len(records))

	if len(records) == 0 && p.fallback != nil {
		records = p.runFallback(ctx, rid, text, meta)
	}

	if records == nil {
		records = []parser.AssignmentRecord{}
	}
	return &parser.ParsedSyllabusResult{Course: meta, Assignments: records}
}

// runFallback makes the single bounded AI call. Every failure mode
// degrades to an empty set: the caller must still get usable course
// metadata, so this stage fails soft where the others fail typed.
func (p *Pipeline) runFallback(ctx context.Context, rid, text string, meta parser.CourseMetadata) []parser.AssignmentRecord {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.AITimeout)
	defer cancel()

	fields, _, err := p.fallback.ExtractAssignments(ctx, llm.ExtractRequest{
		Text:   text,
		Course: meta,
	})
	if err != nil {
		p.logger.Warn("pipeline.fallback.soft_fail", "req_id", rid, "error", err)
		return nil
	}

	var records []parser.AssignmentRecord
	for _, f := range fields {
		title := strings.TrimSpace(f.Title)
		if len(title) <= 3 {
			continue
		}

		var due *string
		if f.DueDate != nil && isoDateRe.MatchString(*f.DueDate) {
			d := *f.DueDate
			due = &d
		}

		desc := strings.TrimSpace(f.Description)
		if desc == "" {
			desc = parser.DescribeTitle(title)
		}
		tags := f.Tags
		if len(tags) == 0 {
			tags = parser.TagsForTitle(title)
		}

		records = append(records, parser.AssignmentRecord{
			Title:       title,
			Description: desc,
			DueDate:     due,
			Status:      string(constants.StatusPending),
			Tags:        tags,
		})
	}
	p.logger.Info("pipeline.fallback.ok", "req_id", rid, "assignments", len(records))
	return records
}
