package llm

import "strings"

// StripCodeFences removes a single wrapping markdown code fence from a model
// response. Providers asked for raw JSON still occasionally wrap it in
// ```json ... ``` blocks; the content itself is left untouched.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line, e.g. "json"
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
