package ai

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// cleanJSON strips markdown code fences some models wrap around JSON
func cleanJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// decodeModelJSON unmarshals the model output, falling back to the first
// top-level object when the model added text around it
func decodeModelJSON(outputText string, v any) error {
	s := cleanJSON(outputText)
	if s == "" {
		return io.ErrUnexpectedEOF
	}

	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}

	sub := s[start : end+1]
	if err := json.Unmarshal([]byte(sub), v); err != nil {
		return fmt.Errorf("unmarshal extracted JSON (len=%d): %w", len(sub), err)
	}
	return nil
}

// cleanTitle removes quotes the model sometimes puts around a bare title
func cleanTitle(s string) string {
	return strings.TrimSpace(strings.NewReplacer(`"`, "", "'", "", "「", "", "」", "").Replace(s))
}
