package contract

import (
	"context"

	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/entity"
)

type ProfileRepository interface {
	// FindByUserID returns (nil, nil) when the user has no profile yet.
	FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error)
	// Upsert creates or patches the profile and returns the stored document.
	Upsert(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*entity.UserProfile, error)
}
