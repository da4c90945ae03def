package service

import "strings"

// NormalizeOutput strips the fenced code block the model frequently wraps its
// JSON in. When the text both starts and ends with a fence marker, the first
// and last physical lines are removed; anything else passes through unchanged.
// The stripping is purely textual, and the function is idempotent.
func NormalizeOutput(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") {
		return raw
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return raw
	}
	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}
