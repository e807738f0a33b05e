package ingest

import "strings"

// ParseFAQ extracts a (question, answer) pair from raw model output.
// Preferred shape: question and answer separated by the first "||". Fallback
// shape: at least two non-empty lines - first line question, remaining lines
// joined by single spaces as the answer. Anything else fails the parse and
// must not be persisted.
func ParseFAQ(raw string) (question string, answer string, ok bool) {
	if idx := strings.Index(raw, "||"); idx >= 0 {
		question = strings.TrimSpace(raw[:idx])
		answer = strings.TrimSpace(raw[idx+2:])
		if question == "" || answer == "" {
			return "", "", false
		}
		return question, answer, true
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < 2 {
		return "", "", false
	}
	return lines[0], strings.Join(lines[1:], " "), true
}
