package demographics

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanText normalizes a fragment of demographic text: markup is removed,
// punctuation damaged by upstream splitting is repaired, and whitespace is
// collapsed. The function is idempotent, so fragments that pass through the
// parser more than once (merged profile values, re-joined narrative) come
// out unchanged the second time.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	// Markup removal runs to a fixpoint: decoding entities can uncover
	// tags ("&lt;b&gt;") and stripping tags can uncover entities, so one
	// ordering of single passes is never enough.
	for {
		next := htmlTagPattern.ReplaceAllString(text, " ")
		next = html.UnescapeString(next)
		next = emphasisPattern.ReplaceAllString(next, "")
		if next == text {
			break
		}
		text = next
	}

	text = spaceBeforePunctPattern.ReplaceAllString(text, "$1")
	for _, r := range quoteSpacingRepairs {
		text = r.pattern.ReplaceAllString(text, r.replace)
	}

	for _, r := range compoundRepairs {
		text = r.pattern.ReplaceAllString(text, r.replace)
	}

	for _, r := range repeatedPunctRepairs {
		text = r.pattern.ReplaceAllString(text, r.replace)
	}

	text = strings.Join(strings.Fields(text), " ")
	return strings.Trim(text, edgePunctCutset)
}
