package dto

type UpdateProfileRequest struct {
	Username      *string  `json:"username" validate:"omitempty,min=3"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	Allergens     []string `json:"allergens" validate:"omitempty,dive,allergen_token"`
	DietaryPrefs  []string `json:"dietaryPrefs" validate:"omitempty,dive,diet_token"`
	RiskTolerance *string  `json:"riskTolerance" validate:"omitempty,oneof=low medium high"`
}

// ProfilePeerResponse is the subset of the profile contract the other
// services rely on when calling the profile service.
type ProfilePeerResponse struct {
	UserId       string   `json:"userId"`
	Allergens    []string `json:"allergens"`
	DietaryPrefs []string `json:"dietaryPrefs"`
}
