package slogobs

import (
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatCompact is a single-line key=value format (default for development).
	// Example: time=2025-11-03T10:40:35 level=DEBUG msg=Message key=value
	FormatCompact Format = "compact"

	// FormatJSON is standard JSON format (for production/log aggregation).
	// Example: {"time":"2025-11-03T10:40:35","level":"DEBUG","msg":"Message","key":"value"}
	FormatJSON Format = "json"
)

// ParseFormat parses a format string and returns the corresponding Format.
// If the format is invalid, it returns FormatCompact (default).
func ParseFormat(s string) Format {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "compact", "text":
		return FormatCompact
	case "json":
		return FormatJSON
	default:
		return FormatCompact
	}
}

// GetFormatFromEnv retrieves the log format from environment variables.
// It checks AXWISE_LOG_FORMAT first, then falls back to LOG_FORMAT.
// If neither is set, it returns FormatCompact (default).
func GetFormatFromEnv() Format {
	if format := os.Getenv("AXWISE_LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}

	return FormatCompact
}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}
