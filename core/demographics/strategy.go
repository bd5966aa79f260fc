package demographics

import "strings"

// Strategy identifies which parsing path handles an input. The classifier
// picks exactly one strategy per call; strategies are never mixed mid-parse,
// so every output can be traced back to a single code path.
type Strategy string

const (
	// StrategyEmpty is chosen for absent or blank input.
	StrategyEmpty Strategy = "empty"

	// StrategyStructured is chosen when the input carries a pre-structured
	// field object. It takes precedence over any raw text.
	StrategyStructured Strategy = "structured_object"

	// StrategyBullet is chosen for bullet-delimited content.
	StrategyBullet Strategy = "bullet"

	// StrategyMultiLine is chosen for line-oriented key/value blocks.
	StrategyMultiLine Strategy = "multi_line"

	// StrategyInline is chosen for single-line run-on content.
	StrategyInline Strategy = "inline"
)

// String returns the strategy name as it appears in logs and reports.
func (s Strategy) String() string {
	return string(s)
}

// DetectStrategy classifies an input without parsing it. The same
// classification drives [Parse], so callers can predict and log the path an
// input will take.
func DetectStrategy(in Input) Strategy {
	if in.Fields != nil {
		return StrategyStructured
	}
	if strings.TrimSpace(in.Text) == "" {
		return StrategyEmpty
	}
	if bulletMarkerPattern.MatchString(in.Text) {
		return StrategyBullet
	}
	if strings.Contains(in.Text, "\n") {
		return StrategyMultiLine
	}
	return StrategyInline
}
