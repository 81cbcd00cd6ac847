package llmjson

import (
	"errors"
	"testing"
)

func TestExtract_PlainJSON(t *testing.T) {
	got, err := Extract(`{"career": "Data Engineer", "score": 3}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got["career"] != "Data Engineer" {
		t.Fatalf("unexpected career: %v", got["career"])
	}
}

func TestExtract_CodeFence(t *testing.T) {
	cases := map[string]string{
		"plain fence":  "```\n{\"a\": 1}\n```",
		"json tag":     "```json\n{\"a\": 1}\n```",
		"single line":  "```{\"a\": 1}```",
		"extra spaces": "  ```json\n  {\"a\": 1}\n```  ",
	}
	for name, in := range cases {
		got, err := Extract(in)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", name, err)
		}
		if got["a"] != float64(1) {
			t.Fatalf("%s: unexpected value: %v", name, got["a"])
		}
	}
}

func TestExtract_ProseAroundObject(t *testing.T) {
	in := "Sure! Here are your career paths:\n{\"career_paths\": [{\"title\": \"SRE\"}]}\nHope this helps."
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	paths, ok := got["career_paths"].([]any)
	if !ok || len(paths) != 1 {
		t.Fatalf("unexpected career_paths: %v", got["career_paths"])
	}
}

func TestExtract_NoBraces(t *testing.T) {
	_, err := Extract("I could not produce a recommendation this time.")
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtract_Empty(t *testing.T) {
	_, err := Extract("   \n ")
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtract_UnbalancedSpan(t *testing.T) {
	// First-{-to-last-} salvage covers both blocks and fails to parse.
	// This is the documented limitation, not something to repair.
	_, err := Extract(`example: {"a": 1} and separately {"b": 2}`)
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtractInto_TypedTarget(t *testing.T) {
	var out struct {
		Career string   `json:"career"`
		Skills []string `json:"required_skills"`
	}
	in := "```json\n{\"career\": \"Backend Developer\", \"required_skills\": [\"Go\", \"SQL\"]}\n```"
	if err := ExtractInto(in, &out); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Career != "Backend Developer" || len(out.Skills) != 2 {
		t.Fatalf("unexpected decode: %+v", out)
	}
}

func TestStripFences_NoFence(t *testing.T) {
	if got := StripFences("  hello  "); got != "hello" {
		t.Fatalf("unexpected: %q", got)
	}
}
