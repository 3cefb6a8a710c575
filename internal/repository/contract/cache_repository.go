package contract

import (
	"yoloeats-be/internal/pkg/cachestore"
)

// CacheRepository is the key-value backend consumed by cachestore.Store.
type CacheRepository interface {
	cachestore.Cache
}
