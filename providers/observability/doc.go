// Package observability defines the logging interface and semantic
// conventions used for structured diagnostics throughout the library.
//
// The central entry point is [Logger]. The parsing packages never construct
// one themselves: callers attach a logger to a [context.Context] with
// [ContextWith] and the library retrieves it with [FromContext], staying
// completely silent when none is installed.
//
// The semconv.go file contains all standard attribute-key and event-name
// constants that should be used when recording observations, ensuring
// consistency across components.
package observability
