package dto

// RecommendationQuery is assembled by the controller. The exclusion sets
// are optional; when both are empty and UserId is set, the user's stored
// profile supplies them.
type RecommendationQuery struct {
	ProductId        string
	UserId           string
	ExcludeAllergens []string
	ExcludeDiets     []string
	Limit            uint64
}
