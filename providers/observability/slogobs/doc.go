// Package slogobs provides an observability.Logger implementation backed by
// Go's standard library log/slog package.
// It supports levelled structured logging in compact text or JSON output,
// configured through code or through the AXWISE_LOG_LEVEL and
// AXWISE_LOG_FORMAT environment variables.
// The main entry point is [New]; output format and log level can be tuned
// with [WithFormat], [WithLevel], [WithOutput], and [WithLogger].
package slogobs
