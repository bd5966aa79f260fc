// Package report provides per-run aggregation of parsing statistics.
//
// The surrounding pipeline normalizes many interview sections in one run; a
// [Report] installed into the context with [Report.ToContext] collects counts
// across all of them (parses per strategy, items emitted, profile
// consolidations, catch-all fallbacks) without coupling the parsing engine to
// any storage. [FromContext] retrieves it; the engine records only when one
// is present, so uninstrumented callers pay nothing.
package report
