package demographics

import "strings"

// IsStructuredContent reports whether text already carries visible structure
// worth feeding to the heuristic parser: bullet markers, more than one
// colon, or more than two lines.
func IsStructuredContent(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if bulletMarkerPattern.MatchString(text) {
		return true
	}
	if strings.Count(text, ":") > 1 {
		return true
	}
	return strings.Count(text, "\n") > 1
}

// ShouldUseLLMParsing signals that the heuristics are likely to underperform
// on this text and the caller may prefer its LLM extraction path instead.
// The signal is purely advisory; parsing behavior never depends on it.
func ShouldUseLLMParsing(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if len(text) > 200 && !IsStructuredContent(text) {
		return true
	}
	if len(text) > 100 && strings.Contains(text, ":") && strings.Contains(text, ".") {
		return true
	}
	return len(strings.Fields(text)) > 20 &&
		!strings.Contains(text, "\n") &&
		!bulletMarkerPattern.MatchString(text)
}
