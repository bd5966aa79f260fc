// Package demographics normalizes the semi-structured demographic sections
// produced by the interview-analysis pipeline into ordered, display-ready
// key/value items.
//
// Upstream sections arrive with no schema guarantee: bullet lists,
// colon-delimited line blocks, single-line run-on text, or pre-structured
// field objects. [Parse] classifies the shape once, dispatches to exactly
// one strategy, and always returns a displayable result; malformed input
// degrades to a single catch-all entry instead of an error.
//
// [CleanText] exposes the idempotent text cleanup applied to every parsed
// value, and [IsStructuredContent] and [ShouldUseLLMParsing] give callers
// advisory signals for routing a section to LLM-based extraction instead of
// the heuristics here.
package demographics
