package services

import "strings"

// StripCodeFences removes a surrounding markdown code block from model
// output. Gemini frequently wraps JSON in ```json ... ``` despite being
// told to respond with JSON only.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.Contains(s, "```json") {
		s = strings.SplitN(s, "```json", 2)[1]
		s = strings.SplitN(s, "```", 2)[0]
		return strings.TrimSpace(s)
	}
	if strings.Contains(s, "```") {
		parts := strings.SplitN(s, "```", 3)
		if len(parts) >= 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	return s
}
