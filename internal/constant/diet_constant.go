package constant

import "sort"

// Diet preference tokens accepted in user profiles.
const (
	DietVegan       = "vegan"
	DietVegetarian  = "vegetarian"
	DietGlutenFree  = "gluten_free"
	DietLactoseFree = "lactose_free"
)

var DietIDs = []string{DietVegan, DietVegetarian, DietGlutenFree, DietLactoseFree}

// Label tags that conflict with each diet. The vegan and vegetarian lists
// overlap but are not symmetric; they are kept exactly as curated.
var (
	veganConflictTags = []string{
		"en:non-vegan",
		"en:contains-milk",
		"en:dairy",
		"en:contains-eggs",
		"en:eggs",
		"en:contains-honey",
		"en:honey",
		"en:contains-meat",
		"en:meat",
		"en:contains-fish",
		"en:fish",
		"en:non-vegetarian",
		"en:vegetarian-status-unknown",
	}
	vegetarianConflictTags = []string{
		"en:non-vegetarian",
		"en:contains-meat",
		"en:meat",
		"en:contains-fish",
		"en:fish",
		"en:vegetarian-status-unknown",
	}
	glutenFreeConflictTags  = []string{"en:contains-gluten", "en:gluten"}
	lactoseFreeConflictTags = []string{"en:contains-milk", "en:dairy"}
)

// DietConflictTags expands a set of diet preference tokens into the label
// tags a matching product must not carry. Vegan subsumes vegetarian, so the
// vegetarian list only applies when vegan is absent. The result is sorted
// and deduplicated.
func DietConflictTags(diets []string) []string {
	dietSet := make(map[string]struct{}, len(diets))
	for _, d := range diets {
		dietSet[d] = struct{}{}
	}

	var tags []string
	if _, ok := dietSet[DietVegan]; ok {
		tags = append(tags, veganConflictTags...)
	} else if _, ok := dietSet[DietVegetarian]; ok {
		tags = append(tags, vegetarianConflictTags...)
	}
	if _, ok := dietSet[DietGlutenFree]; ok {
		tags = append(tags, glutenFreeConflictTags...)
	}
	if _, ok := dietSet[DietLactoseFree]; ok {
		tags = append(tags, lactoseFreeConflictTags...)
	}

	sort.Strings(tags)
	return dedupeSorted(tags)
}

func dedupeSorted(values []string) []string {
	if len(values) < 2 {
		return values
	}
	out := values[:1]
	for _, v := range values[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
