// Package extract converts raw syllabus documents into plain text.
// Dispatch is strictly by filename extension; content sniffing is out of
// contract.
package extract

import (
	"context"
	"time"

	"github.com/coursedeck/syllabus-tracker/constants"
)

// RawDocument is the caller-owned input to one extraction call. The
// package never retains the bytes past the call.
type RawDocument struct {
	Bytes    []byte
	Filename string
}

// ExtractedText is the immutable product of one extraction. Both the
// metadata and assignment extractors consume Content without mutation.
type ExtractedText struct {
	Content  string
	Format   constants.DocumentFormat
	Pages    int // PDF only; 0 otherwise
	Duration time.Duration
}

// TextExtractor is Stage 1 of the pipeline: document bytes -> text.
type TextExtractor interface {
	Extract(ctx context.Context, doc RawDocument) (ExtractedText, error)
}
