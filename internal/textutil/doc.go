// Package textutil provides shared low-level string helpers used throughout
// the library internals: safe JSON rendering for log and example output, and
// length-capped previews of upstream payloads.
//
// Key entry points: [JSONToString] for rendering arbitrary values and
// [TruncateString] for rune-aware payload previews.
package textutil
