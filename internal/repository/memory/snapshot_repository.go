package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/repository/contract"
)

type ProfileSnapshotRepository struct {
	cache *cache.Cache
}

// NewProfileSnapshotRepository builds the in-process snapshot store. One
// hour default expiry bounds how stale an offline verdict can get; expired
// items are purged every 10 minutes.
func NewProfileSnapshotRepository() contract.ProfileSnapshotRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ProfileSnapshotRepository{
		cache: c,
	}
}

func (r *ProfileSnapshotRepository) Save(profile *dto.ProfilePeerResponse) {
	if profile == nil || profile.UserId == "" {
		return
	}
	r.cache.Set(profile.UserId, profile, cache.DefaultExpiration)
}

func (r *ProfileSnapshotRepository) Get(userID string) (*dto.ProfilePeerResponse, bool) {
	if x, found := r.cache.Get(userID); found {
		return x.(*dto.ProfilePeerResponse), true
	}
	return nil, false
}

func (r *ProfileSnapshotRepository) Delete(userID string) {
	r.cache.Delete(userID)
}
