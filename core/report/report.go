package report

import (
	"context"
	"sync"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey struct{}

// reportContextKey is the key used to store a Report in context.
var reportContextKey = contextKey{}

// Report aggregates parsing statistics across a batch of upstream sections.
// Install one into a context with [Report.ToContext] before parsing; the
// engine records into it when present and stays silent otherwise. A single
// Report may be shared by concurrent section parses.
type Report struct {
	mu             sync.Mutex
	parses         int
	items          int
	byStrategy     map[string]int
	consolidations int
	fallbacks      int
}

// New creates an empty Report.
func New() *Report {
	return &Report{
		byStrategy: make(map[string]int),
	}
}

// FromContext retrieves the Report from the context.
// Returns nil if no report is installed.
func FromContext(ctx context.Context) *Report {
	if ctx == nil {
		return nil
	}
	rep, _ := ctx.Value(reportContextKey).(*Report)
	return rep
}

// ToContext stores the Report in the given context and returns the enriched context.
func (r *Report) ToContext(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, reportContextKey, r)
}

// RecordParse records one completed parse with its selected strategy and the
// number of items returned.
func (r *Report) RecordParse(strategy string, items int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.parses++
	r.items += items
	if r.byStrategy == nil {
		r.byStrategy = make(map[string]int)
	}
	r.byStrategy[strategy]++
}

// RecordConsolidation records how many profile fragments were folded together
// during a single parse.
func (r *Report) RecordConsolidation(merged int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.consolidations += merged
}

// RecordFallback records a parse that ended in the catch-all entry.
func (r *Report) RecordFallback() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fallbacks++
}

// Summary is a point-in-time copy of a Report's counters.
type Summary struct {
	Parses         int            `json:"parses"`
	Items          int            `json:"items"`
	ByStrategy     map[string]int `json:"by_strategy,omitempty"`
	Consolidations int            `json:"consolidations,omitempty"`
	Fallbacks      int            `json:"fallbacks,omitempty"`
}

// Snapshot returns a copy of the current counters, safe to read and serialize
// while other goroutines keep recording.
func (r *Report) Snapshot() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	byStrategy := make(map[string]int, len(r.byStrategy))
	for strategy, count := range r.byStrategy {
		byStrategy[strategy] = count
	}

	return Summary{
		Parses:         r.parses,
		Items:          r.items,
		ByStrategy:     byStrategy,
		Consolidations: r.consolidations,
		Fallbacks:      r.fallbacks,
	}
}

// ItemsPerParse returns the mean number of items per recorded parse.
func (s Summary) ItemsPerParse() float64 {
	if s.Parses == 0 {
		return 0
	}
	return float64(s.Items) / float64(s.Parses)
}
