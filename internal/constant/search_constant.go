package constant

// Catalog search pagination bounds.
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// Recommendation pipeline bounds. The vector search overfetches so that
// deduplication and payload drops still leave enough candidates.
const (
	RecommendationOverfetchLimit = 20
	DefaultRecommendationLimit   = 10
	MaxRecommendationLimit       = 50
)

// Vector index names.
const (
	QdrantCollectionName = "product_vectors"
	VectorPayloadCodeKey = "code"
	VectorPayloadTagsKey = "labels_tags"
)

// Mongo databases and collections.
const (
	CatalogDatabase    = "openfoods"
	ProductsCollection = "products"
	ProfileDatabase    = "yoloeats_user_profile"
	ProfilesCollection = "user_profiles"
)
