package demographics

import "testing"

func TestDetectStrategy(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Strategy
	}{
		{
			name: "nothing",
			in:   Input{},
			want: StrategyEmpty,
		},
		{
			name: "blank text",
			in:   Input{Text: "   \n\t  "},
			want: StrategyEmpty,
		},
		{
			name: "fields object",
			in:   Input{Fields: &Fields{Location: "Berlin"}},
			want: StrategyStructured,
		},
		{
			name: "fields take precedence over text",
			in:   Input{Fields: &Fields{Location: "Berlin"}, Text: "• Age: 34"},
			want: StrategyStructured,
		},
		{
			name: "unicode bullets",
			in:   Input{Text: "• Age: 34 • Location: Berlin"},
			want: StrategyBullet,
		},
		{
			name: "dash bullets at line start",
			in:   Input{Text: "- Age: 34\n- Location: Berlin"},
			want: StrategyBullet,
		},
		{
			name: "star bullets at line start",
			in:   Input{Text: "* Age: 34"},
			want: StrategyBullet,
		},
		{
			name: "bullet on later line",
			in:   Input{Text: "Demographics\n- Age: 34"},
			want: StrategyBullet,
		},
		{
			name: "negative number is not a bullet",
			in:   Input{Text: "-5 years of experience"},
			want: StrategyInline,
		},
		{
			name: "range dash is not a bullet",
			in:   Input{Text: "3-5 years of experience"},
			want: StrategyInline,
		},
		{
			name: "multi line block",
			in:   Input{Text: "Age: 34\nLocation: Berlin"},
			want: StrategyMultiLine,
		},
		{
			name: "single line",
			in:   Input{Text: "Senior PM based in Berlin"},
			want: StrategyInline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectStrategy(tt.in); got != tt.want {
				t.Errorf("DetectStrategy() = %q, want %q", got, tt.want)
			}
		})
	}
}
