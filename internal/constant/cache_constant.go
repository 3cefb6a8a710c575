package constant

import (
	"fmt"
	"time"
)

// Cache TTLs. Product lookups expire fast because catalog data changes
// through the write endpoints; the allergen reference list is static.
const (
	ProductCacheTTL   = 300 * time.Second
	ProfileCacheTTL   = 3600 * time.Second
	ReferenceCacheTTL = 86400 * time.Second
)

const AllergenListCacheKey = "allergens:list_v1"

// ProductIDCacheKey is keyed by the Mongo ObjectID hex string.
func ProductIDCacheKey(id string) string {
	return fmt.Sprintf("product:id:%s", id)
}

// ProductCodeCacheKey is keyed by the product barcode.
func ProductCodeCacheKey(code string) string {
	return fmt.Sprintf("product:code:%s", code)
}

func ProfileCacheKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}
