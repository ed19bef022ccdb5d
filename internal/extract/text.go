package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// extractPlainText reads the bytes as UTF-8 text, normalising line
// endings. A UTF-8 BOM is tolerated and stripped.
func extractPlainText(b []byte) (string, error) {
	s := strings.TrimPrefix(string(b), "\uFEFF")
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("content is not valid UTF-8")
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s, nil
}
