package demographics

import "strings"

// narrativeAccumulator pools text that does not form a key/value pair of its
// own. Bullet and multi-line parsing route stray prose through this single
// path so it collapses into one profile or additional-information entry
// instead of a pile of meaningless rows.
type narrativeAccumulator struct {
	fragments []string
}

func (a *narrativeAccumulator) add(fragment string) {
	if fragment = strings.TrimSpace(fragment); fragment != "" {
		a.fragments = append(a.fragments, fragment)
	}
}

// flush joins the pending fragments with ". ", cleans the result, and
// applies the profile-or-additional merge rule. The accumulator resets.
func (a *narrativeAccumulator) flush(items []Item) []Item {
	if len(a.fragments) == 0 {
		return items
	}
	fragment := CleanText(strings.Join(a.fragments, ". "))
	a.fragments = nil
	return mergeNarrative(items, fragment)
}

// mergeNarrative routes one cleaned narrative fragment: profile-flavored
// text extends or creates the Profile entry, everything else extends or
// creates Additional Information.
func mergeNarrative(items []Item, fragment string) []Item {
	if fragment == "" {
		return items
	}
	if matchesProfileIndicators(fragment) {
		if idx := findKey(items, profileKey); idx >= 0 {
			items[idx].Value += " " + fragment
			return items
		}
		return append(items, Item{Key: profileKey, Value: fragment})
	}
	if idx := findKey(items, additionalInfoKey); idx >= 0 {
		items[idx].Value += " " + fragment
		return items
	}
	return append(items, Item{Key: additionalInfoKey, Value: fragment})
}

// findKey returns the index of the first item with the given key, matched
// case-insensitively, or -1.
func findKey(items []Item, key string) int {
	for i, item := range items {
		if strings.EqualFold(item.Key, key) {
			return i
		}
	}
	return -1
}

// consolidateProfiles merges still-separate profile-like entries into a
// single Profile entry and reports how many entries were folded away. It
// only fires on genuine fragmentation: zero or one matching entries are
// left untouched.
func consolidateProfiles(items []Item) ([]Item, int) {
	var matches []int
	for i, item := range items {
		if isProfileKey(item.Key) || matchesProfileIndicators(item.Value) {
			matches = append(matches, i)
		}
	}
	if len(matches) <= 1 {
		return items, 0
	}

	values := make([]string, 0, len(matches))
	for _, idx := range matches {
		if value := CleanText(items[idx].Value); value != "" {
			values = append(values, value)
		}
	}
	items[matches[0]] = Item{Key: profileKey, Value: strings.Join(values, " ")}

	// Remove the folded entries back to front so indices stay valid.
	for i := len(matches) - 1; i >= 1; i-- {
		idx := matches[i]
		items = append(items[:idx], items[idx+1:]...)
	}
	return items, len(matches) - 1
}
