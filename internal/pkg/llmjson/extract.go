package llmjson

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when no parseable JSON object could be located in the
// completion text.
var ErrNoJSON = errors.New("no JSON object found in completion text")

// Extract pulls a JSON object out of raw language-model output. Completions
// are not guaranteed to be well-formed JSON: models wrap the payload in code
// fences or explanatory prose. The strategy is two-tier: parse the whole
// (fence-stripped) text, and if that fails, parse the span from the first
// '{' to the last '}'.
//
// This is deliberately not a repair parser. There is no bracket balancing and
// no trailing-comma fixing, and if the text contains several unrelated brace
// blocks the salvage span can cover the wrong content and fail. That outcome
// is accepted and reported as ErrNoJSON.
func Extract(text string) (map[string]any, error) {
	var out map[string]any
	if err := ExtractInto(text, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractInto is Extract decoding into a caller-supplied value.
func ExtractInto(text string, out any) error {
	cleaned := StripFences(text)
	if cleaned == "" {
		return ErrNoJSON
	}

	if err := json.Unmarshal([]byte(cleaned), out); err == nil {
		return nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return ErrNoJSON
	}

	if err := json.Unmarshal([]byte(cleaned[start:end+1]), out); err != nil {
		return ErrNoJSON
	}
	return nil
}

// StripFences trims whitespace and surrounding markdown code-fence markers,
// including a language hint on the opening fence (```json).
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx != -1 {
		// Drop a language hint occupying the rest of the fence line.
		first := strings.TrimSpace(s[:idx])
		if first == "" || isFenceTag(first) {
			s = s[idx+1:]
		}
	} else {
		s = strings.TrimSpace(s)
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}

	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

func isFenceTag(tag string) bool {
	if len(tag) > 16 {
		return false
	}
	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
