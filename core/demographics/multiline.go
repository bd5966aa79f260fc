package demographics

import "strings"

// parseMultiLine extracts key/value pairs from line-oriented blocks. A key
// either sits on its own colon-terminated line with the value on the lines
// below, or shares a line with its value. Prose between fields accumulates
// as narrative and flows through the profile merge rule, and a final
// consolidation pass folds fragmented profile entries together. The second
// return value is the number of entries that consolidation folded away.
func parseMultiLine(text string) ([]Item, int) {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}

	var items []Item
	var narrative narrativeAccumulator

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if isKeyLine(line) {
			items = narrative.flush(items)
			key := strings.TrimSpace(strings.TrimSuffix(line, ":"))

			var valueLines []string
			j := i + 1
			for ; j < len(lines) && !isKeyLine(lines[j]); j++ {
				valueLines = append(valueLines, lines[j])
			}
			i = j - 1

			items = classifyPair(items, key, CleanText(strings.Join(valueLines, " ")))
			continue
		}

		if key, value, ok := splitInlinePair(line); ok {
			items = narrative.flush(items)
			items = classifyPair(items, key, CleanText(value))
			continue
		}

		narrative.add(line)
	}

	items = narrative.flush(items)
	return consolidateProfiles(items)
}

// isKeyLine reports whether a trimmed line introduces a field: it must end
// with a colon, stay short, and contain no sentence period.
func isKeyLine(line string) bool {
	return strings.HasSuffix(line, ":") &&
		len(line) < keyLineMaxLen &&
		!strings.Contains(line, ".")
}

// splitInlinePair splits "key: value" lines where the colon sits mid-line.
// The key part must pass the same shape test as a key line so prose that
// happens to contain a colon is not shredded.
func splitInlinePair(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return "", "", false
	}
	if len(key)+1 >= keyLineMaxLen || strings.Contains(key, ".") {
		return "", "", false
	}
	return key, value, true
}

// classifyPair routes one extracted pair. Profile-flavored pairs fold into
// the running Profile entry unless the key names a professional field;
// values that glue a category word to a trailing sentence are split apart;
// everything else is emitted unchanged. Pairs with empty values are dropped.
func classifyPair(items []Item, key, value string) []Item {
	if value == "" {
		return items
	}

	if isProfileKey(key) || (matchesProfileIndicators(value) && !keyMentionsWork(key)) {
		if idx := findKey(items, profileKey); idx >= 0 {
			items[idx].Value += " " + value
			return items
		}
		return append(items, Item{Key: profileKey, Value: value})
	}

	if head, rest, ok := splitConcatenatedValue(value); ok {
		items = append(items, Item{Key: key, Value: head})
		return append(items, Item{Key: professionalContextKey, Value: rest})
	}

	return append(items, Item{Key: key, Value: value})
}

// splitConcatenatedValue detects the upstream artifact of a short category
// word glued to a following sentence ("Tech They are responsible for...").
// It fires only on a narrow shape: enough words, a short first word, and a
// capitalized pronoun or demonstrative in second position.
func splitConcatenatedValue(value string) (head, rest string, ok bool) {
	words := strings.Fields(value)
	if len(words) <= splitMinWords {
		return "", "", false
	}
	if len(words[0]) > splitMaxFirstWordLen {
		return "", "", false
	}
	if !splitPronouns[words[1]] {
		return "", "", false
	}
	return words[0], strings.Join(words[1:], " "), true
}
