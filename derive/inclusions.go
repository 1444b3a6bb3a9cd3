package derive

import (
	"strings"
)

// SplitLines turns a free-text block into trimmed, de-duplicated lines.
// Upstream inclusion/exclusion text arrives as newline- or
// semicolon-separated prose.
func SplitLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ';'
	})

	var out []string
	seen := map[string]bool{}
	for _, f := range fields {
		line := strings.TrimSpace(f)
		if line == "" {
			continue
		}
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, line)
	}
	return out
}
