package demographics

import (
	"regexp"
	"strings"
)

// Heuristic tables for the demographics parser.
// Every keyword list, repair pair, and threshold lives here so each rule can
// be tuned and tested in isolation without touching control flow.

// replacement pairs a compiled pattern with its replacement text.
type replacement struct {
	pattern *regexp.Regexp
	replace string
}

// === MARKUP PATTERNS ===

// htmlTagPattern matches HTML/XML tags left over from upstream rendering.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// emphasisPattern matches markdown emphasis runs (asterisks, backticks).
// The enclosed text is preserved; only the markers are removed.
var emphasisPattern = regexp.MustCompile("[*`]+")

// === PUNCTUATION REPAIR PATTERNS ===

// spaceBeforePunctPattern matches stray whitespace wedged before closing
// punctuation, an artifact of upstream token joining.
var spaceBeforePunctPattern = regexp.MustCompile(`\s+([.,;:!?])`)

// quoteSpacingRepairs close up whitespace between quotes and adjacent
// punctuation ("word " . -> "word".).
var quoteSpacingRepairs = []replacement{
	{regexp.MustCompile(`\s+(["'])([.,;:])`), "$1$2"},
	{regexp.MustCompile(`(["'])\s+([.,;:])`), "$1$2"},
}

// repeatedPunctRepairs collapse runs of duplicated punctuation, including
// the spaced doubled periods produced when cleaned fragments are joined
// with ". ".
var repeatedPunctRepairs = []replacement{
	{regexp.MustCompile(`\.(\s*\.)+`), "."},
	{regexp.MustCompile(`,(\s*,)+`), ","},
	{regexp.MustCompile(`;(\s*;)+`), ";"},
	{regexp.MustCompile(`"{2,}`), `"`},
	{regexp.MustCompile(`'{2,}`), "'"},
}

// doublePeriodPattern collapses the ".. " seams created when values that
// already end with a period are joined with ". ".
var doublePeriodPattern = regexp.MustCompile(`\.(\s*\.)+`)

// edgePunctCutset lists the characters stripped from the edges of a cleaned
// fragment. Inner punctuation is never touched.
const edgePunctCutset = " \t\n.,;:!?*•·–-'\""

// === COMPOUND WORD REPAIRS ===

// compoundRepairs fix compound words that upstream sentence splitting breaks
// with a period ("full.time"). The capture-based replacements preserve the
// original capitalization of the leading fragment. Extend this table rather
// than adding inline fixes.
var compoundRepairs = []replacement{
	{regexp.MustCompile(`(?i)\b(full)\.(time)\b`), "$1-$2"},
	{regexp.MustCompile(`(?i)\b(part)\.(time)\b`), "$1-$2"},
	{regexp.MustCompile(`(?i)\b(self)\.(employed)\b`), "$1-$2"},
	{regexp.MustCompile(`(?i)\b(long)\.(term)\b`), "$1-$2"},
	{regexp.MustCompile(`(?i)\b(well)\.(established)\b`), "$1-$2"},
	{regexp.MustCompile(`(?i)\b(high)\.(end)\b`), "$1-$2"},
	{regexp.MustCompile(`(?i)\b(co)\.(founder)\b`), "$1-$2"},
	{regexp.MustCompile(`(?i)\b(decision)\.(maker)\b`), "$1-$2"},
	// Abbreviations lose their trailing period to the same splitter.
	{regexp.MustCompile(`\b([Ee]\.g)\b\.?`), "$1."},
	{regexp.MustCompile(`\b([Ii]\.e)\b\.?`), "$1."},
}

// === BULLET PATTERNS ===

// bulletSplitPattern splits bullet content on • markers anywhere in the text
// and on -/* markers at line starts.
var bulletSplitPattern = regexp.MustCompile(`(?m)•|^[ \t]*[-*][ \t]+`)

// bulletMarkerPattern detects whether text contains any bullet marker at all.
// Dash and star markers must be followed by whitespace so negative numbers
// and emphasis do not register as bullets.
var bulletMarkerPattern = regexp.MustCompile(`(?m)•|^[ \t]*[-*][ \t]`)

// === STRUCTURED FIELD MAPPING ===

// structuredFieldOrder fixes the emission order and display labels for the
// pre-structured input variant.
var structuredFieldOrder = []struct {
	field string
	label string
}{
	{"experience_level", "Experience Level"},
	{"roles", "Roles"},
	{"industry", "Industry"},
	{"location", "Location"},
	{"age_range", "Age Range"},
	{"professional_context", "Professional Context"},
}

// === PROFILE HEURISTICS ===

// profileKeys lists key names whose entries participate in profile
// consolidation. Lookup is case-insensitive on the trimmed key.
var profileKeys = map[string]bool{
	"profile":                true,
	"additional information": true,
	"demographics":           true,
	"background":             true,
	"context":                true,
	"details":                true,
}

// profileIndicators flag narrative fragments that describe the participant's
// personal situation rather than a discrete demographic field. Matching is
// case-insensitive substring matching.
var profileIndicators = []string{
	"homeowner",
	"architect-designed",
	"testament",
	"long-term",
	"significant",
	"standards",
	"care",
	"craftsmanship",
	"renovation",
	"attention to detail",
}

// workKeyMarkers guard legitimate professional fields against profile
// merging even when their values read like narrative.
var workKeyMarkers = []string{"work", "experience", "industry"}

// === KEY LINE AND SPLIT THRESHOLDS ===

// keyLineMaxLen bounds the length of a line that can introduce a field.
const keyLineMaxLen = 50

// Conservative split thresholds for values that glue a short category word
// to a following sentence ("Tech They are responsible for...").
const (
	splitMinWords        = 8
	splitMaxFirstWordLen = 15
)

// splitPronouns is the fixed second-word set for the conservative split.
// Matching is deliberately case-sensitive: a capitalized pronoun or
// demonstrative mid-value marks the seam left by upstream concatenation.
var splitPronouns = map[string]bool{
	"They":  true,
	"He":    true,
	"She":   true,
	"This":  true,
	"These": true,
}

// === INLINE PATTERNS ===

// inlineKeyPattern locates key candidates in single-line content: a short
// label run ending in a colon. Commas and periods are excluded from the
// label body so a key cannot absorb text across a clause boundary.
var inlineKeyPattern = regexp.MustCompile(`([A-Za-z][\w /&'-]{0,39}):`)

// === KEY NORMALIZATION ===

// keyStripPattern removes every character that is not a word character or
// whitespace from candidate keys.
var keyStripPattern = regexp.MustCompile(`[^\w\s]`)

// Canonical keys produced by the merge, split, and fallback paths.
const (
	profileKey             = "Profile"
	additionalInfoKey      = "Additional Information"
	professionalContextKey = "Professional Context"
	fallbackKey            = "Demographics"
	emptyKeyFallback       = "Information"
)

// === HELPER FUNCTIONS ===

// matchesProfileIndicators reports whether text reads like personal profile
// narrative according to the indicator table.
func matchesProfileIndicators(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range profileIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// isProfileKey reports whether a key belongs to the profile-related family.
func isProfileKey(key string) bool {
	return profileKeys[strings.ToLower(strings.TrimSpace(key))]
}

// keyMentionsWork reports whether a key names a professional field that must
// never be folded into the profile.
func keyMentionsWork(key string) bool {
	lower := strings.ToLower(key)
	for _, marker := range workKeyMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
