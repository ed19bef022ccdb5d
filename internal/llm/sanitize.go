package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// StripMarkdownFences removes a surrounding ```json ... ``` fence that
// models sometimes add despite instructions.
func StripMarkdownFences(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}

// NormalizeAndSanitizeAssignments
// - Renames known key synonyms (due_date/deadline -> dueDate, name -> title)
// - Defaults status to "pending" and drops non-pending values
// - Coerces tags to an array of strings; drops null/empty dueDate to null
// - Removes unknown keys (strict additionalProperties = false friendliness)
// - Drops items with a missing or empty title
func NormalizeAndSanitizeAssignments(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	items, ok := doc["assignments"].([]any)
	if !ok {
		return nil, nil, fmt.Errorf("sanitize: 'assignments' is not an array")
	}

	var dropped []string
	cleaned := make([]any, 0, len(items))

	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			dropped = append(dropped, fmt.Sprintf("item[%d](not object)", i))
			continue
		}

		rename := func(from, to string) {
			if v, ok := m[from]; ok {
				if _, exists := m[to]; !exists {
					m[to] = v
				}
				delete(m, from)
				dropped = append(dropped, fmt.Sprintf("item[%d].%s->%s", i, from, to))
			}
		}
		rename("due_date", "dueDate")
		rename("deadline", "dueDate")
		rename("name", "title")

		// title is mandatory; drop the whole item without one
		title, _ := m["title"].(string)
		title = strings.TrimSpace(title)
		if title == "" {
			dropped = append(dropped, fmt.Sprintf("item[%d](no title)", i))
			continue
		}
		m["title"] = title

		// dueDate: keep valid ISO strings, null everything else
		switch v := m["dueDate"].(type) {
		case string:
			s := strings.TrimSpace(v)
			if s == "" || strings.EqualFold(s, "null") || !isoDateRe.MatchString(s) {
				m["dueDate"] = nil
				dropped = append(dropped, fmt.Sprintf("item[%d].dueDate(invalid)", i))
			} else {
				m["dueDate"] = s
			}
		case nil:
			m["dueDate"] = nil
		default:
			m["dueDate"] = nil
			dropped = append(dropped, fmt.Sprintf("item[%d].dueDate(type)", i))
		}

		// status: the contract only allows "pending"
		if s, _ := m["status"].(string); !strings.EqualFold(strings.TrimSpace(s), "pending") {
			if _, present := m["status"]; present {
				dropped = append(dropped, fmt.Sprintf("item[%d].status(reset)", i))
			}
		}
		m["status"] = "pending"

		// tags: array of non-empty strings
		if v, ok := m["tags"]; ok {
			arr, ok := v.([]any)
			if !ok {
				delete(m, "tags")
				dropped = append(dropped, fmt.Sprintf("item[%d].tags(type)", i))
			} else {
				tags := make([]any, 0, len(arr))
				for _, t := range arr {
					if s, ok := t.(string); ok && strings.TrimSpace(s) != "" {
						tags = append(tags, strings.TrimSpace(s))
					}
				}
				m["tags"] = tags
			}
		}

		// trim description, drop empty
		if v, ok := m["description"].(string); ok {
			s := strings.TrimSpace(v)
			if s == "" {
				delete(m, "description")
				dropped = append(dropped, fmt.Sprintf("item[%d].description(empty)", i))
			} else {
				m["description"] = s
			}
		}

		// remove unknown keys
		allowed := map[string]struct{}{
			"title": {}, "description": {}, "dueDate": {}, "status": {}, "tags": {},
		}
		for k := range m {
			if _, ok := allowed[k]; !ok {
				delete(m, k)
				dropped = append(dropped, fmt.Sprintf("item[%d].%s(unknown)", i, k))
			}
		}

		cleaned = append(cleaned, m)
	}

	out, err := json.Marshal(map[string]any{"assignments": cleaned})
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
