package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	errx "github.com/finsight-core/server/internal/core/error"
)

// Validator is implemented by every structured-output schema in this package.
type Validator interface {
	Validate() error
}

// Decode parses a model response into the target schema and validates it.
// Models wrap JSON in markdown fences or prose often enough that we extract
// the outermost object before unmarshalling. Any failure is a typed schema
// error: fatal for the request, no retry or repair prompt.
func Decode[T Validator](content string, out T) error {
	raw, err := extractJSON(content)
	if err != nil {
		return errx.WrapSchema(err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return errx.WrapSchema(fmt.Errorf("unmarshal: %w", err))
	}
	if err := out.Validate(); err != nil {
		return errx.WrapSchema(err)
	}
	return nil
}

// extractJSON returns the outermost JSON object in the content, tolerating
// ```json fences and surrounding prose.
func extractJSON(content string) (string, error) {
	s := strings.TrimSpace(content)
	if s == "" {
		return "", fmt.Errorf("empty model response")
	}

	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		s = strings.TrimPrefix(s, "json")
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object found in model response")
	}
	return s[start : end+1], nil
}
