package demographics

import "strings"

// parseInline extracts pairs from single-line content. Key candidates are
// colon-terminated label runs; the text between one candidate and the next
// is its value, with separators trimmed by the cleaner. Lines without a
// usable key fall through to the narrative merge rule so the text survives
// as a profile or additional-information entry.
func parseInline(text string) []Item {
	matches := inlineKeyPattern.FindAllStringSubmatchIndex(text, -1)

	var items []Item
	for i, match := range matches {
		key := strings.TrimSpace(text[match[2]:match[3]])

		valueEnd := len(text)
		if i+1 < len(matches) {
			valueEnd = matches[i+1][0]
		}
		value := CleanText(text[match[1]:valueEnd])

		if key == "" || value == "" {
			continue
		}
		items = append(items, Item{Key: key, Value: value})
	}

	if len(items) > 0 {
		return items
	}
	return mergeNarrative(nil, CleanText(text))
}
