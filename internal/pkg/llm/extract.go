package llm

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ExtractJSON recovers a JSON object from free-form model output by
// taking the substring between the first '{' and the last '}'.
func ExtractJSON(raw string, out interface{}) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return errors.New("model output contains no JSON object")
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), out); err != nil {
		return errors.Wrap(err, "failed to parse model JSON output")
	}
	return nil
}
