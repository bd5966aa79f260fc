// Package intake turns raw upstream payloads into parser input. Payloads
// arrive as sloppy LLM JSON, fenced code blocks, rendered HTML, or plain
// text; [Decode] classifies and converts them, and [Normalize] runs the
// result straight through the demographics parser.
//
// Decoding is total. JSON is repaired before unmarshalling, HTML is
// converted to markdown so its lists survive as bullets, and anything
// unusable falls back to the plain-text route with a debug log instead of
// an error.
package intake
