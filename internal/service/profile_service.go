package service

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/cachestore"
	"yoloeats-be/internal/pkg/logger"
	"yoloeats-be/internal/repository/contract"
	"yoloeats-be/pkg/events"
	pktNats "yoloeats-be/pkg/nats"
)

type IProfileService interface {
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)
	UpsertProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*entity.UserProfile, error)
	ListAllergens(ctx context.Context) ([]constant.AllergenInfo, error)
}

type profileService struct {
	profileRepo    contract.ProfileRepository
	profileCache   *cachestore.Store[entity.UserProfile]
	referenceCache *cachestore.Store[[]constant.AllergenInfo]
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewProfileService(
	profileRepo contract.ProfileRepository,
	profileCache *cachestore.Store[entity.UserProfile],
	referenceCache *cachestore.Store[[]constant.AllergenInfo],
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IProfileService {
	return &profileService{
		profileRepo:    profileRepo,
		profileCache:   profileCache,
		referenceCache: referenceCache,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	return s.profileCache.GetOrLoad(ctx, constant.ProfileCacheKey(userID), constant.ProfileCacheTTL,
		func(ctx context.Context) (*entity.UserProfile, error) {
			profile, err := s.profileRepo.FindByUserID(ctx, userID)
			if err != nil {
				return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Profile store is unavailable")
			}
			if profile == nil {
				return nil, apperr.NotFoundf("Profile for user %s not found", userID)
			}
			return profile, nil
		})
}

func (s *profileService) UpsertProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*entity.UserProfile, error) {
	if req.Username == nil && req.Email == nil && req.Allergens == nil &&
		req.DietaryPrefs == nil && req.RiskTolerance == nil {
		return nil, apperr.BadRequestf("No fields provided for update")
	}

	updated, err := s.profileRepo.Upsert(ctx, userID, req)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.BadRequestf("Update failed due to a conflicting unique identifier")
		}
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Profile store is unavailable")
	}
	if updated == nil {
		// Upsert with return-after must produce a document.
		return nil, apperr.Internalf("Profile update failed unexpectedly after upsert operation")
	}

	s.profileCache.Invalidate(ctx, constant.ProfileCacheKey(userID))

	// Checker instances drop their offline snapshot of this user on the
	// event; losing it is the worst case, so a publish failure only warns.
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewProfileUpdated(userID)); err != nil {
			s.logger.Warn("profile_service", "Failed to publish profile updated event", map[string]interface{}{
				"userId": userID,
				"error":  err.Error(),
			})
		}
	}

	return updated, nil
}

func (s *profileService) ListAllergens(ctx context.Context) ([]constant.AllergenInfo, error) {
	list, err := s.referenceCache.GetOrLoad(ctx, constant.AllergenListCacheKey, constant.ReferenceCacheTTL,
		func(ctx context.Context) (*[]constant.AllergenInfo, error) {
			allergens := constant.CommonAllergens
			return &allergens, nil
		})
	if err != nil {
		return nil, err
	}
	return *list, nil
}
