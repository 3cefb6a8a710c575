package dto

// ProductUpdatedMessage rides the catalog event bus after a successful
// create or update so the vector payload stays in step with the document.
type ProductUpdatedMessage struct {
	ProductId  string   `json:"productId"`
	Code       string   `json:"code"`
	LabelsTags []string `json:"labelsTags"`
}

type ProductDeletedMessage struct {
	ProductId string `json:"productId"`
	Code      string `json:"code"`
}
