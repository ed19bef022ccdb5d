package constants

import "strings"

// DocumentFormat is the closed set of syllabus formats the pipeline accepts.
// Dispatch is by filename extension only; we never sniff content.
type DocumentFormat string

const (
	TXT  DocumentFormat = "TXT"
	PDF  DocumentFormat = "PDF"
	DOCX DocumentFormat = "DOCX"
	DOC  DocumentFormat = "DOC"
)

// FileTypes holds the allowed values for the format field in ParseJob.
var FileTypes = []string{string(TXT), string(PDF), string(DOCX), string(DOC)}

// AllowedExtensions holds the file extensions accepted for syllabus uploads.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"pdf":  {},
	"docx": {},
	"doc":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its DocumentFormat.
// Returns "" for anything outside the closed set.
func MapExtToFormat(ext string) DocumentFormat {
	switch NormalizeExt(ext) {
	case "txt":
		return TXT
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	case "doc":
		return DOC
	default:
		return ""
	}
}
