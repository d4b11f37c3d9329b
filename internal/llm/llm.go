// Package llm hides the model vendor behind two narrow ports: structured
// inference (prompt + expected shape -> JSON) and free text generation.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotConfigured = errors.New("llm: no api key configured")
	ErrEmptyResponse = errors.New("llm: empty response")
)

type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
)

type Field struct {
	Name        string
	Type        FieldType
	Description string
	Enum        []string
}

// Schema describes the flat JSON object a structured call must return.
type Schema struct {
	Name        string
	Description string
	Fields      []Field
	Required    []string
}

type Request struct {
	System string
	Prompt string
	Schema Schema
}

type StructuredInference interface {
	Infer(ctx context.Context, req Request) (json.RawMessage, error)
}

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Decode unmarshals a model reply into T. Replies wrapped in markdown fences
// or surrounded by prose are accepted.
func Decode[T any](raw []byte) (T, error) {
	var out T
	s := extractJSON(string(raw))
	if s == "" {
		return out, fmt.Errorf("%w: no JSON object in %q", ErrEmptyResponse, truncate(string(raw), 120))
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return out, fmt.Errorf("decode model reply: %w", err)
	}
	return out, nil
}

// extractJSON finds the first balanced JSON object in a string and returns it.
// It strips common markdown fences first.
func extractJSON(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, r := range []string{"```json", "```JSON", "```"} {
		s = strings.ReplaceAll(s, r, "")
	}

	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
