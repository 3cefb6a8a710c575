package dto

type CreateProductRequest struct {
	Code            string   `json:"code" validate:"required"`
	ProductName     *string  `json:"product_name"`
	IngredientsText *string  `json:"ingredients_text"`
	BrandsTags      []string `json:"brands_tags"`
	CategoriesTags  []string `json:"categories_tags"`
}

type UpdateProductRequest struct {
	ProductName      *string  `json:"product_name"`
	GenericName      *string  `json:"generic_name"`
	ImageUrl         *string  `json:"image_url"`
	IngredientsText  *string  `json:"ingredients_text"`
	BrandsTags       []string `json:"brands_tags"`
	CategoriesTags   []string `json:"categories_tags"`
	LabelsTags       []string `json:"labels_tags"`
	TracesTags       []string `json:"traces_tags"`
	AllergensTags    []string `json:"allergens_tags"`
	Quantity         *string  `json:"quantity"`
	CountriesTags    []string `json:"countries_tags"`
	NutritionGradeFr *string  `json:"nutrition_grade_fr"`
}

// SearchProductsQuery is assembled by the controller from query params.
// Allergens and Diets are exclusion sets.
type SearchProductsQuery struct {
	Name       string
	Category   string
	Brand      string
	Label      string
	Country    string
	Nutriscore string
	Allergens  []string
	Diets      []string
	Limit      int64
	Skip       int64
}

type DeleteProductResponse struct {
	Deleted bool   `json:"deleted"`
	Code    string `json:"code"`
}
