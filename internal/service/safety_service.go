package service

import (
	"context"
	"sort"

	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/gateway"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/ingredient"
	"yoloeats-be/internal/pkg/logger"
	"yoloeats-be/internal/repository/contract"
)

// ISafetyService decides whether a product is safe for a user. Check runs
// the full pipeline from identifiers; Resolve is the verdict step on an
// already-assembled candidate set.
type ISafetyService interface {
	Check(ctx context.Context, req *dto.CheckRequest) (*dto.CheckResult, error)
	Resolve(ctx context.Context, candidates, userAllergens, userDiets []string) (*dto.CheckResult, error)
}

type safetyService struct {
	profileGateway gateway.IProfileGateway
	catalogGateway gateway.ICatalogGateway
	graphRepo      contract.GraphRepository
	snapshotRepo   contract.ProfileSnapshotRepository
	logger         logger.ILogger
}

func NewSafetyService(
	profileGateway gateway.IProfileGateway,
	catalogGateway gateway.ICatalogGateway,
	graphRepo contract.GraphRepository,
	snapshotRepo contract.ProfileSnapshotRepository,
	log logger.ILogger,
) ISafetyService {
	return &safetyService{
		profileGateway: profileGateway,
		catalogGateway: catalogGateway,
		graphRepo:      graphRepo,
		snapshotRepo:   snapshotRepo,
		logger:         log,
	}
}

func (s *safetyService) Check(ctx context.Context, req *dto.CheckRequest) (*dto.CheckResult, error) {
	profile, offline, err := s.loadProfile(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	product, err := s.catalogGateway.FetchProductByCode(ctx, req.ProductIdentifier)
	if err != nil {
		return nil, err
	}

	candidates := ingredient.CandidateSet(product.IngredientsText, product.TracesTags)
	result, err := s.Resolve(ctx, candidates, profile.Allergens, profile.DietaryPrefs)
	if err != nil {
		return nil, err
	}

	result.IsOfflineResult = offline
	return result, nil
}

// loadProfile fetches the user's restrictions, remembering every success
// for later. A transport failure falls back to the last snapshot; any HTTP
// answer from the profile service, 404 included, is authoritative and
// never falls back.
func (s *safetyService) loadProfile(ctx context.Context, userID string) (*dto.ProfilePeerResponse, bool, error) {
	profile, err := s.profileGateway.FetchProfile(ctx, userID)
	if err == nil {
		s.snapshotRepo.Save(profile)
		return profile, false, nil
	}

	if apperr.IsCode(err, apperr.CodeUpstreamUnavailable) {
		if snapshot, ok := s.snapshotRepo.Get(userID); ok {
			s.logger.Warn("safety_service", "Profile service unreachable, using offline snapshot", map[string]interface{}{
				"userId": userID,
				"error":  err.Error(),
			})
			return snapshot, true, nil
		}
	}

	return nil, false, err
}

func (s *safetyService) Resolve(ctx context.Context, candidates, userAllergens, userDiets []string) (*dto.CheckResult, error) {
	if len(candidates) == 0 {
		// No ingredient data means safety cannot be proven either way.
		return &dto.CheckResult{
			Status:               dto.SafetyStatusCaution,
			ConflictingAllergens: []string{},
			ConflictingDiets:     []string{},
			TraceAllergens:       []string{},
		}, nil
	}

	conflicts, err := s.graphRepo.FindConflicts(ctx, candidates, userAllergens, userDiets)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Ingredient knowledge base is unavailable")
	}

	status := dto.SafetyStatusSafe
	switch {
	case len(conflicts.ConflictingAllergens) > 0 || len(conflicts.ConflictingDiets) > 0:
		status = dto.SafetyStatusUnsafe
	case len(conflicts.TraceAllergens) > 0:
		status = dto.SafetyStatusCaution
	}

	return &dto.CheckResult{
		Status:               status,
		ConflictingAllergens: uniqueSorted(conflicts.ConflictingAllergens),
		ConflictingDiets:     uniqueSorted(conflicts.ConflictingDiets),
		TraceAllergens:       uniqueSorted(conflicts.TraceAllergens),
	}, nil
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
