package demographics

import "strings"

// validateItems enforces the output contract: non-empty keys and values,
// case-insensitively unique keys in first-seen order, and a catch-all entry
// when nothing survived for a non-blank input. The second return value
// reports whether the catch-all fallback fired.
func validateItems(items []Item, originalText string) ([]Item, bool) {
	type group struct {
		key    string
		values []string
	}

	var groups []group
	index := make(map[string]int)

	for _, item := range items {
		key := normalizeKey(item.Key)
		value := strings.TrimSpace(item.Value)
		if key == "" || value == "" {
			continue
		}

		lower := strings.ToLower(key)
		if pos, seen := index[lower]; seen {
			groups[pos].values = append(groups[pos].values, value)
			continue
		}
		index[lower] = len(groups)
		groups = append(groups, group{key: key, values: []string{value}})
	}

	result := make([]Item, 0, len(groups))
	for _, g := range groups {
		result = append(result, Item{Key: g.key, Value: joinDistinct(g.values)})
	}

	if len(result) == 0 {
		original := strings.TrimSpace(originalText)
		if original == "" {
			return []Item{}, false
		}
		return []Item{{Key: fallbackKey, Value: original}}, true
	}
	return result, false
}

// normalizeKey strips markup punctuation from a candidate key while keeping
// word characters and inner spaces. Keys stripped down to nothing get the
// generic Information label; keys empty before stripping stay empty so the
// caller drops the item.
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	key = keyStripPattern.ReplaceAllString(key, "")
	key = strings.Join(strings.Fields(key), " ")
	if key == "" {
		return emptyKeyFallback
	}
	return key
}

// joinDistinct joins the distinct values of one key with ". ", collapsing
// the doubled periods that appear when a value already ends with one.
func joinDistinct(values []string) string {
	distinct := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		if !seen[value] {
			seen[value] = true
			distinct = append(distinct, value)
		}
	}
	joined := strings.Join(distinct, ". ")
	return doublePeriodPattern.ReplaceAllString(joined, ".")
}
