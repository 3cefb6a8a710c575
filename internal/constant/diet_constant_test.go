package constant

import (
	"sort"
	"testing"
)

func TestDietConflictTags(t *testing.T) {
	tests := []struct {
		name      string
		diets     []string
		wantTags  []string
		wantCount int
	}{
		{
			name:      "no diets",
			diets:     nil,
			wantCount: 0,
		},
		{
			name:      "vegan full list",
			diets:     []string{"vegan"},
			wantCount: 13,
		},
		{
			name:      "vegetarian smaller list",
			diets:     []string{"vegetarian"},
			wantCount: 6,
		},
		{
			name:      "vegan wins over vegetarian",
			diets:     []string{"vegetarian", "vegan"},
			wantCount: 13,
		},
		{
			name:     "gluten free",
			diets:    []string{"gluten_free"},
			wantTags: []string{"en:contains-gluten", "en:gluten"},
		},
		{
			name:     "lactose free",
			diets:    []string{"lactose_free"},
			wantTags: []string{"en:contains-milk", "en:dairy"},
		},
		{
			name:      "vegan plus lactose free dedupes dairy tags",
			diets:     []string{"vegan", "lactose_free"},
			wantCount: 13,
		},
		{
			name:      "unknown diet ignored",
			diets:     []string{"keto"},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DietConflictTags(tt.diets)

			if tt.wantTags != nil {
				want := append([]string(nil), tt.wantTags...)
				sort.Strings(want)
				if len(got) != len(want) {
					t.Fatalf("tags = %v, want %v", got, want)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Errorf("tags[%d] = %q, want %q", i, got[i], want[i])
					}
				}
				return
			}

			if len(got) != tt.wantCount {
				t.Errorf("tag count = %d (%v), want %d", len(got), got, tt.wantCount)
			}
			if !sort.StringsAreSorted(got) {
				t.Errorf("tags not sorted: %v", got)
			}
			seen := map[string]bool{}
			for _, tag := range got {
				if seen[tag] {
					t.Errorf("duplicate tag %q", tag)
				}
				seen[tag] = true
			}
		})
	}
}

func TestAllergenConflictTags(t *testing.T) {
	got := AllergenConflictTags("milk")
	want := []string{"milk", "en:milk", "en:contains-milk"}
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
