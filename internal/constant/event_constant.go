package constant

// In-process event bus topics inside the catalog service.
const (
	TopicProductUpdated = "product.updated"
	TopicProductDeleted = "product.deleted"
)
