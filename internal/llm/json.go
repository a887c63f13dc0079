package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// DecodeObject extracts the first top-level JSON object from a model response
// and unmarshals it into v. Models routinely wrap JSON in code fences or
// prose, so everything before the first '{' and after the last '}' is cut.
// Anything that still does not parse fails, and the caller falls back.
func DecodeObject(raw string, v any) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return errors.New("no JSON object in response")
	}
	return json.Unmarshal([]byte(raw[start:end+1]), v)
}
