package model

// VectorCandidate is one similarity-search result with the payload fields
// the recommendation pipeline reads. Code is nil when the payload carried
// no usable natural key.
type VectorCandidate struct {
	PointId    string
	Score      float32
	Code       *string
	LabelsTags []string
}
