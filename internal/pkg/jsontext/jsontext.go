package jsontext

import (
	"encoding/json"
	"strings"
)

// Kind tells the frontend how to render a payload column.
type Kind string

const (
	KindJSON  Kind = "json"
	KindText  Kind = "text"
	KindEmpty Kind = "empty"
)

// Rendered is the display form of a log payload column. Log writers
// prepend free-text prefixes to their JSON ("payload = {...}"), so the
// renderer extracts from the first brace before parsing.
type Rendered struct {
	Kind Kind            `json:"kind"`
	JSON json.RawMessage `json:"json,omitempty"`
	Text string          `json:"text,omitempty"`
}

// Render classifies content as embedded JSON, plain text or empty.
// Malformed JSON falls back to the original text untouched.
func Render(content string) Rendered {
	if content == "" {
		return Rendered{Kind: KindEmpty}
	}

	candidate := content
	if idx := strings.Index(content, "{"); idx >= 0 {
		candidate = content[idx:]
	}

	// RawMessage keeps the stored fragment verbatim instead of
	// re-ordering keys through a map round-trip.
	if json.Valid([]byte(candidate)) {
		return Rendered{Kind: KindJSON, JSON: json.RawMessage(candidate)}
	}

	return Rendered{Kind: KindText, Text: content}
}

// ExtractAction pulls the "action" field out of an embedded KYT
// decision fragment. Returns "N/A" when content has no JSON or no
// action field, and "Erro no JSON" when a fragment exists but does not
// parse.
func ExtractAction(content string) string {
	idx := strings.Index(content, "{")
	if idx < 0 {
		return "N/A"
	}

	var decision struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal([]byte(content[idx:]), &decision); err != nil {
		return "Erro no JSON"
	}
	if decision.Action == "" {
		return "N/A"
	}
	return decision.Action
}
