package constant

import "fmt"

// AllergenInfo is one entry of the canonical allergen reference list
// served by the profile service.
type AllergenInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func strPtr(s string) *string { return &s }

// CommonAllergens is the EU regulation 1169/2011 annex II list. IDs are
// the tokens stored in user profiles and matched against graph nodes.
var CommonAllergens = []AllergenInfo{
	{ID: "gluten", Name: "Cereals containing gluten", Description: strPtr("Includes wheat (such as spelt and khorasan wheat), rye, barley, oats.")},
	{ID: "crustaceans", Name: "Crustaceans", Description: strPtr("Includes crabs, lobsters, prawns, scampi.")},
	{ID: "eggs", Name: "Eggs", Description: nil},
	{ID: "fish", Name: "Fish", Description: nil},
	{ID: "peanuts", Name: "Peanuts", Description: nil},
	{ID: "soybeans", Name: "Soybeans", Description: nil},
	{ID: "milk", Name: "Milk", Description: strPtr("Including lactose.")},
	{ID: "nuts", Name: "Nuts", Description: strPtr("Includes almonds, hazelnuts, walnuts, cashews, pecans, brazils, pistachios, macadamia nuts.")},
	{ID: "celery", Name: "Celery", Description: nil},
	{ID: "mustard", Name: "Mustard", Description: nil},
	{ID: "sesame", Name: "Sesame seeds", Description: nil},
	{ID: "sulphites", Name: "Sulphur dioxide and sulphites", Description: strPtr("At concentrations of more than 10mg/kg or 10mg/litre.")},
	{ID: "lupin", Name: "Lupin", Description: nil},
	{ID: "molluscs", Name: "Molluscs", Description: strPtr("Includes mussels, oysters, squid, snails.")},
}

// AllergenIDs returns the valid profile allergen tokens.
func AllergenIDs() []string {
	ids := make([]string, 0, len(CommonAllergens))
	for _, a := range CommonAllergens {
		ids = append(ids, a.ID)
	}
	return ids
}

// AllergenConflictTags expands an allergen token into the payload tags
// that mark a product as conflicting: the raw token plus the OpenFoodFacts
// style "en:" variants.
func AllergenConflictTags(allergen string) []string {
	return []string{
		allergen,
		fmt.Sprintf("en:%s", allergen),
		fmt.Sprintf("en:contains-%s", allergen),
	}
}
