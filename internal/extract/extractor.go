package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/coursedeck/syllabus-tracker/constants"
	"github.com/coursedeck/syllabus-tracker/internal/common"
)

// Extractor dispatches a document to the format-specific strategy.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

var _ TextExtractor = (*Extractor)(nil)

// Extract picks a strategy based on the declared filename's extension.
// Unknown extensions surface common.ErrUnsupportedFormat; a strategy
// failure surfaces common.ErrExtractionFailed. Pure transformation, no
// global state.
func (e *Extractor) Extract(ctx context.Context, doc RawDocument) (ExtractedText, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(doc.Filename))
	format := constants.MapExtToFormat(ext)
	e.logger.Debug("extract.start", "filename", doc.Filename, "ext", ext, "bytes", len(doc.Bytes))

	if format == "" {
		e.logger.Error("extract.unsupported_extension", "filename", doc.Filename, "ext", ext)
		return ExtractedText{}, fmt.Errorf("%w: extension %q", common.ErrUnsupportedFormat, ext)
	}
	if err := ctx.Err(); err != nil {
		return ExtractedText{}, err
	}

	var (
		content string
		pages   int
		err     error
	)
	switch format {
	case constants.TXT:
		content, err = extractPlainText(doc.Bytes)
	case constants.PDF:
		content, pages, err = extractPDF(doc.Bytes)
	case constants.DOCX, constants.DOC:
		content, err = extractDocx(doc.Bytes)
	}
	if err != nil {
		e.logger.Error("extract.failed", "filename", doc.Filename, "format", format, "error", err)
		return ExtractedText{}, fmt.Errorf("%w: %s: %v", common.ErrExtractionFailed, format, err)
	}

	res := ExtractedText{
		Content:  content,
		Format:   format,
		Pages:    pages,
		Duration: time.Since(start),
	}
	e.logger.Debug("extract.ok",
		"filename", doc.Filename,
		"format", format,
		"chars", len(content),
		"pages", pages,
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
