package demographics

import (
	"context"
	"testing"
)

func TestParseTextMultiLine(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  []Item
	}{
		{
			name:  "keys on their own lines",
			input: "Experience Level:\nSenior\n\nLocation:\nBerlin",
			want: []Item{
				{Key: "Experience Level", Value: "Senior"},
				{Key: "Location", Value: "Berlin"},
			},
		},
		{
			name:  "inline pairs per line",
			input: "Age: 34\nLocation: Berlin\nRole: Product Manager",
			want: []Item{
				{Key: "Age", Value: "34"},
				{Key: "Location", Value: "Berlin"},
				{Key: "Role", Value: "Product Manager"},
			},
		},
		{
			name:  "multi line value consumed until next key",
			input: "Professional Context:\nLeads the platform team\nMostly remote\nLocation:\nBerlin",
			want: []Item{
				{Key: "Professional Context", Value: "Leads the platform team Mostly remote"},
				{Key: "Location", Value: "Berlin"},
			},
		},
		{
			name:  "narrative line between pairs",
			input: "Role: Developer\nWorks on a significant legacy platform\nLocation: Berlin",
			want: []Item{
				{Key: "Role", Value: "Developer"},
				{Key: "Profile", Value: "Works on a significant legacy platform"},
				{Key: "Location", Value: "Berlin"},
			},
		},
		{
			name:  "work keys resist profile merging",
			input: "Work Experience: Led significant migration projects\nLocation: Berlin",
			want: []Item{
				{Key: "Work Experience", Value: "Led significant migration projects"},
				{Key: "Location", Value: "Berlin"},
			},
		},
		{
			name:  "concatenated category and sentence split",
			input: "Location: Berlin\nIndustry: Tech They are responsible for product direction and team growth",
			want: []Item{
				{Key: "Location", Value: "Berlin"},
				{Key: "Industry", Value: "Tech"},
				{Key: "Professional Context", Value: "They are responsible for product direction and team growth"},
			},
		},
		{
			name:  "long value without pronoun left intact",
			input: "Location: Berlin\nIndustry: Tech and media companies working with early stage startups in Berlin",
			want: []Item{
				{Key: "Location", Value: "Berlin"},
				{Key: "Industry", Value: "Tech and media companies working with early stage startups in Berlin"},
			},
		},
		{
			name:  "profile keyed pairs merge",
			input: "Background: A homeowner with an architect-designed flat\nNotes: Plans long-term improvements",
			want: []Item{
				{Key: "Profile", Value: "A homeowner with an architect-designed flat Plans long-term improvements"},
			},
		},
		{
			name:  "fragmented profile entries consolidate",
			input: "Some miscellaneous note\nDetails: maintains high standards of craftsmanship",
			want: []Item{
				{Key: "Profile", Value: "Some miscellaneous note maintains high standards of craftsmanship"},
			},
		},
		{
			name:  "three narrative fragments collapse into one profile",
			input: "Owns an architect-designed flat\nAge: 34\nPlans long-term renovation work\nLocation: Berlin\nA testament to their high standards",
			want: []Item{
				{Key: "Profile", Value: "Owns an architect-designed flat Plans long-term renovation work A testament to their high standards"},
				{Key: "Age", Value: "34"},
				{Key: "Location", Value: "Berlin"},
			},
		},
		{
			name:  "long colon line is narrative",
			input: "Age: 34\nA very long sentence describing the participant that happens to end with a colon:",
			want: []Item{
				{Key: "Age", Value: "34"},
				{Key: "Additional Information", Value: "A very long sentence describing the participant that happens to end with a colon"},
			},
		},
		{
			name:  "key with period rejected as narrative",
			input: "Loves hiking. Reads: books daily\nLocation: Berlin",
			want: []Item{
				{Key: "Additional Information", Value: "Loves hiking. Reads: books daily"},
				{Key: "Location", Value: "Berlin"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseText(ctx, tt.input)
			assertItems(t, got, tt.want)
		})
	}
}
