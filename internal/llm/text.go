package llm

import "strings"

// CleanText normalises raw model output: surrounding markdown code fences
// are removed, as is blank padding. Text inside the fences is kept as is.
func CleanText(raw string) string {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	lines := strings.Split(s, "\n")
	if len(lines) >= 2 && strings.HasPrefix(strings.TrimSpace(lines[0]), "```") {
		lines = lines[1:]
		if last := len(lines) - 1; strings.TrimSpace(lines[last]) == "```" {
			lines = lines[:last]
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
