package demographics

import "strings"

// parseBullets extracts key/value pairs from bullet-delimited content.
// Segments carrying a colon become pairs; the rest pool in the narrative
// accumulator and surface as a single merged entry at the end.
func parseBullets(text string) []Item {
	var items []Item
	var narrative narrativeAccumulator

	for _, segment := range bulletSplitPattern.Split(text, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		key, value, found := strings.Cut(segment, ":")
		if found && strings.TrimSpace(key) != "" {
			items = append(items, Item{
				Key:   strings.TrimSpace(key),
				Value: CleanText(value),
			})
			continue
		}
		narrative.add(segment)
	}

	return narrative.flush(items)
}
