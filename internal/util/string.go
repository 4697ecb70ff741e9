package util

import "strings"

// StripCodeFences removes a markdown code fence around model output.
// The formatter prompt forbids fences, but models wrap anyway often
// enough that record parsing has to tolerate it.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	for _, p := range []string{"```json", "```yaml", "```"} {
		if strings.HasPrefix(s, p) {
			s = s[len(p):]
			break
		}
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
