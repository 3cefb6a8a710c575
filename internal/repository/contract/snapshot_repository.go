package contract

import (
	"yoloeats-be/internal/dto"
)

// ProfileSnapshotRepository remembers the last profile fetched per user so
// safety checks can degrade gracefully when the profile service is down.
type ProfileSnapshotRepository interface {
	Save(profile *dto.ProfilePeerResponse)
	Get(userID string) (*dto.ProfilePeerResponse, bool)
	Delete(userID string)
}
