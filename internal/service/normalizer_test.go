package service

import "testing"

func TestNormalizeOutput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "No fences",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "Fenced with language tag",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "Fenced without language tag",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "Multi-line body",
			input:    "```json\n{\n  \"key\": \"value\"\n}\n```",
			expected: "{\n  \"key\": \"value\"\n}",
		},
		{
			name:     "Leading fence only is untouched",
			input:    "```json\n{\"key\": \"value\"}",
			expected: "```json\n{\"key\": \"value\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeOutput(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeOutput(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeOutputIdempotent(t *testing.T) {
	inputs := []string{
		`{"key": "value"}`,
		"```json\n{\"total_amount\": 100.00}\n```",
		"```\n[1, 2, 3]\n```",
	}
	for _, input := range inputs {
		once := NormalizeOutput(input)
		twice := NormalizeOutput(once)
		if once != twice {
			t.Errorf("NormalizeOutput is not a fixed point for %q: %q != %q", input, once, twice)
		}
	}
}
