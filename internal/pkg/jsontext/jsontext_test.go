package jsontext

import (
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKind Kind
		wantJSON string
		wantText string
	}{
		{
			name:     "empty content",
			content:  "",
			wantKind: KindEmpty,
		},
		{
			name:     "plain text",
			content:  "not json",
			wantKind: KindText,
			wantText: "not json",
		},
		{
			name:     "bare json object",
			content:  `{"a":1}`,
			wantKind: KindJSON,
			wantJSON: `{"a":1}`,
		},
		{
			name:     "json with log prefix",
			content:  `prefix = {"a":1}`,
			wantKind: KindJSON,
			wantJSON: `{"a":1}`,
		},
		{
			name:     "broken json falls back to text",
			content:  `payload = {"a":1`,
			wantKind: KindText,
			wantText: `payload = {"a":1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.content)

			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if string(got.JSON) != tt.wantJSON {
				t.Errorf("JSON = %q, want %q", got.JSON, tt.wantJSON)
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}

func TestExtractAction(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "action present",
			content: `KYT decision = {"action":"ALLOW","score":10}`,
			want:    "ALLOW",
		},
		{
			name:    "no json fragment",
			content: "transacao aprovada",
			want:    "N/A",
		},
		{
			name:    "malformed fragment",
			content: `decision = {"action":"DENY"`,
			want:    "Erro no JSON",
		},
		{
			name:    "json without action",
			content: `{"score":10}`,
			want:    "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractAction(tt.content); got != tt.want {
				t.Errorf("ExtractAction(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
