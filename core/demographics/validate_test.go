package demographics

import "testing"

func TestValidateItems(t *testing.T) {
	tests := []struct {
		name     string
		items    []Item
		original string
		want     []Item
		fallback bool
	}{
		{
			name: "valid items pass through",
			items: []Item{
				{Key: "Age", Value: "34"},
				{Key: "Location", Value: "Berlin"},
			},
			want: []Item{
				{Key: "Age", Value: "34"},
				{Key: "Location", Value: "Berlin"},
			},
		},
		{
			name: "empty keys and values dropped",
			items: []Item{
				{Key: "", Value: "orphaned"},
				{Key: "Age", Value: "  "},
				{Key: "Location", Value: "Berlin"},
			},
			want: []Item{
				{Key: "Location", Value: "Berlin"},
			},
		},
		{
			name: "markup stripped from keys",
			items: []Item{
				{Key: "**Age**", Value: "34"},
				{Key: "  Location:  ", Value: "Berlin"},
			},
			want: []Item{
				{Key: "Age", Value: "34"},
				{Key: "Location", Value: "Berlin"},
			},
		},
		{
			name: "key stripped to nothing becomes Information",
			items: []Item{
				{Key: "***", Value: "still here"},
			},
			want: []Item{
				{Key: "Information", Value: "still here"},
			},
		},
		{
			name: "duplicate keys keep first casing and join distinct values",
			items: []Item{
				{Key: "Location", Value: "Berlin"},
				{Key: "location", Value: "Hamburg"},
				{Key: "LOCATION", Value: "Berlin"},
			},
			want: []Item{
				{Key: "Location", Value: "Berlin. Hamburg"},
			},
		},
		{
			name: "join collapses doubled periods",
			items: []Item{
				{Key: "Context", Value: "Moved to Berlin."},
				{Key: "context", Value: "Works remotely"},
			},
			want: []Item{
				{Key: "Context", Value: "Moved to Berlin. Works remotely"},
			},
		},
		{
			name:     "nothing left falls back to raw text",
			items:    []Item{{Key: "", Value: ""}},
			original: "  raw section text  ",
			want: []Item{
				{Key: "Demographics", Value: "raw section text"},
			},
			fallback: true,
		},
		{
			name:     "nothing left and blank original stays empty",
			items:    nil,
			original: "   ",
			want:     []Item{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fellBack := validateItems(tt.items, tt.original)
			if fellBack != tt.fallback {
				t.Errorf("validateItems() fallback = %v, want %v", fellBack, tt.fallback)
			}
			if got == nil {
				t.Fatal("validateItems() returned nil slice")
			}
			assertItems(t, got, tt.want)
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Age", "Age"},
		{"  Experience Level  ", "Experience Level"},
		{"**Role**", "Role"},
		{"Key:", "Key"},
		{"a  -  b", "a b"},
		{"§§§", "Information"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := normalizeKey(tt.input); got != tt.want {
			t.Errorf("normalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
