package demographics

import (
	"context"

	"github.com/AxWise-GmbH/axwise-flow-sub001/core/report"
	"github.com/AxWise-GmbH/axwise-flow-sub001/providers/observability"
)

// Item is one normalized demographic attribute, ready for display.
type Item struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Fields is the pre-structured input variant produced by newer upstream
// pipeline stages. Field names mirror the upstream JSON contract.
type Fields struct {
	ExperienceLevel     string   `json:"experience_level,omitempty"`
	Roles               []string `json:"roles,omitempty"`
	Industry            string   `json:"industry,omitempty"`
	Location            string   `json:"location,omitempty"`
	AgeRange            string   `json:"age_range,omitempty"`
	ProfessionalContext string   `json:"professional_context,omitempty"`
}

// Input is the parser input: a pre-structured field object, a raw text
// blob, or nothing at all. When Fields is set it takes precedence and Text
// is ignored.
type Input struct {
	Fields *Fields
	Text   string
}

// Parse normalizes one demographics section into an ordered list of items.
// It is total: any input, however malformed, yields a displayable result,
// degrading to a single catch-all entry rather than failing. The returned
// slice is never nil.
//
// The context may carry a logger installed with [observability.ContextWith]
// and a batch counter installed with [report.Report.ToContext]; both are
// optional and Parse stays silent without them. No cancellation applies,
// parsing is pure computation.
func Parse(ctx context.Context, in Input) []Item {
	strategy := DetectStrategy(in)
	obs := observability.FromContext(ctx)

	if obs != nil {
		obs.Trace(ctx, observability.EventParseStart,
			observability.String(observability.AttrParseStrategy, strategy.String()),
			observability.Int(observability.AttrParseInputLength, len(in.Text)),
		)
	}

	var items []Item
	var merged int
	switch strategy {
	case StrategyStructured:
		items = parseStructured(*in.Fields)
	case StrategyBullet:
		items = parseBullets(in.Text)
	case StrategyMultiLine:
		items, merged = parseMultiLine(in.Text)
	case StrategyInline:
		items = parseInline(in.Text)
	}

	// Structured input never falls back to raw text: an all-empty field
	// object means there is genuinely nothing to show.
	original := in.Text
	if strategy == StrategyStructured {
		original = ""
	}
	items, fellBack := validateItems(items, original)

	if obs != nil {
		if merged > 0 {
			obs.Debug(ctx, observability.EventProfileConsolidation,
				observability.Int(observability.AttrParseConsolidated, merged),
			)
		}
		if fellBack {
			obs.Debug(ctx, observability.EventParseFallback,
				observability.Int(observability.AttrParseInputLength, len(in.Text)),
				observability.Bool(observability.AttrAdvisoryStructured, IsStructuredContent(in.Text)),
				observability.Bool(observability.AttrAdvisoryLLM, ShouldUseLLMParsing(in.Text)),
			)
		}
		obs.Debug(ctx, observability.EventParseEnd,
			observability.String(observability.AttrParseStrategy, strategy.String()),
			observability.Int(observability.AttrParseItems, len(items)),
			observability.Bool(observability.AttrParseFallback, fellBack),
		)
	}

	if rep := report.FromContext(ctx); rep != nil {
		rep.RecordParse(strategy.String(), len(items))
		if merged > 0 {
			rep.RecordConsolidation(merged)
		}
		if fellBack {
			rep.RecordFallback()
		}
	}

	return items
}

// ParseText normalizes a raw text section.
func ParseText(ctx context.Context, text string) []Item {
	return Parse(ctx, Input{Text: text})
}

// ParseFields normalizes a pre-structured field object.
func ParseFields(ctx context.Context, fields Fields) []Item {
	return Parse(ctx, Input{Fields: &fields})
}
