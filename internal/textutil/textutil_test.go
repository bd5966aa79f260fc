package textutil

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// TestJSONToString_Compact verifies that JSONToString produces compact JSON by default.
func TestJSONToString_Compact(t *testing.T) {
	input := map[string]int{"a": 1, "b": 2}
	result := JSONToString(input)

	// Must be valid JSON and must not contain a newline (compact mode).
	if strings.Contains(result, "\n") {
		t.Errorf("JSONToString() compact mode should not contain newlines, got: %q", result)
	}
	if !strings.Contains(result, `"a"`) {
		t.Errorf("JSONToString() result missing key 'a': %q", result)
	}
}

// TestJSONToString_Indented verifies that passing indent=true produces
// pretty-printed JSON with newlines.
func TestJSONToString_Indented(t *testing.T) {
	input := map[string]int{"x": 42}
	result := JSONToString(input, true)

	if !strings.Contains(result, "\n") {
		t.Errorf("JSONToString(indent=true) should contain newlines, got: %q", result)
	}
	if !strings.Contains(result, "  ") {
		t.Errorf("JSONToString(indent=true) should contain two-space indentation, got: %q", result)
	}
}

// TestJSONToString_MarshalError verifies that JSONToString returns an error
// sentinel string rather than panicking when the value cannot be marshaled.
func TestJSONToString_MarshalError(t *testing.T) {
	// Channels cannot be marshaled to JSON.
	input := make(chan int)
	result := JSONToString(input)

	if !strings.HasPrefix(result, `{"error":`) {
		t.Errorf("JSONToString() on unmarshalable value should return error JSON, got: %q", result)
	}
}

// TestToString verifies that ToString is a thin wrapper returning the same
// compact JSON as JSONToString with no indentation flag.
func TestToString(t *testing.T) {
	input := struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}{"Location", "Berlin"}
	want := `{"key":"Location","value":"Berlin"}`

	got := ToString(input)
	if got != want {
		t.Errorf("ToString() = %q, want %q", got, want)
	}
}

func TestTruncateString(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		maxLen        int
		wantTruncated bool
	}{
		{"shorter than max", "short", 10, false},
		{"exactly at max", "12345", 5, false},
		{"longer than max", "this is a long demographic description", 10, true},
		{"zero maxLen uses default", strings.Repeat("x", DefaultMaxStringLength+1), 0, true},
		{"negative maxLen uses default", "fine", -1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateString(tc.input, tc.maxLen)

			truncated := strings.Contains(got, "truncated")
			if truncated != tc.wantTruncated {
				t.Errorf("TruncateString(%q, %d) truncated = %v, want %v (got %q)",
					tc.input, tc.maxLen, truncated, tc.wantTruncated, got)
			}
			if !tc.wantTruncated && got != tc.input {
				t.Errorf("TruncateString() altered a string within the limit: %q -> %q", tc.input, got)
			}
		})
	}
}

// TestTruncateString_RuneSafe ensures multi-byte characters are never split.
func TestTruncateString_RuneSafe(t *testing.T) {
	input := strings.Repeat("ü", 20)
	got := TruncateString(input, 10)

	if !utf8.ValidString(got) {
		t.Errorf("TruncateString() produced invalid UTF-8: %q", got)
	}
	if !strings.HasPrefix(got, strings.Repeat("ü", 10)) {
		t.Errorf("TruncateString() should keep the first 10 runes, got %q", got)
	}
}
