package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/gateway"
	"yoloeats-be/internal/model"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/logger"
	"yoloeats-be/internal/pkg/pointid"
	"yoloeats-be/internal/repository/contract"
)

type IRecommendationService interface {
	Recommend(ctx context.Context, query *dto.RecommendationQuery) ([]*entity.Product, error)
}

type recommendationService struct {
	vectorRepo     contract.VectorRepository
	productRepo    contract.ProductRepository
	profileGateway gateway.IProfileGateway
	logger         logger.ILogger
}

func NewRecommendationService(
	vectorRepo contract.VectorRepository,
	productRepo contract.ProductRepository,
	profileGateway gateway.IProfileGateway,
	log logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		vectorRepo:     vectorRepo,
		productRepo:    productRepo,
		profileGateway: profileGateway,
		logger:         log,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, query *dto.RecommendationQuery) ([]*entity.Product, error) {
	if _, err := primitive.ObjectIDFromHex(query.ProductId); err != nil {
		return nil, apperr.BadRequestf("Invalid product ID format: %s", query.ProductId)
	}
	sourcePointID := pointid.FromProductID(query.ProductId)

	vector, found, err := s.vectorRepo.GetPointVector(ctx, sourcePointID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Vector index is unavailable")
	}
	if !found || len(vector) == 0 {
		return nil, apperr.NotFoundf("Vector data not found for product %s", query.ProductId)
	}

	excludeAllergens, excludeDiets, err := s.resolveExclusions(ctx, query)
	if err != nil {
		return nil, err
	}
	excludeTags := exclusionTags(excludeAllergens, excludeDiets)

	limit := query.Limit
	if limit == 0 {
		limit = constant.DefaultRecommendationLimit
	}
	if limit > constant.MaxRecommendationLimit {
		limit = constant.MaxRecommendationLimit
	}

	candidates, err := s.vectorRepo.SearchSimilar(ctx, vector,
		[]string{sourcePointID}, excludeTags, constant.RecommendationOverfetchLimit)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Vector index is unavailable")
	}

	codes := s.candidateCodes(candidates, limit)
	if len(codes) == 0 {
		return []*entity.Product{}, nil
	}

	// Hydration goes straight to the store of truth; recommendation lists
	// must not resurrect a stale cached document.
	products, err := s.productRepo.FindByCodes(ctx, codes, int64(limit))
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Product store is unavailable")
	}
	if products == nil {
		products = []*entity.Product{}
	}
	return products, nil
}

// resolveExclusions prefers the explicit query sets. Without them the
// user's stored profile personalizes the result; a user without a profile
// just gets unfiltered recommendations.
func (s *recommendationService) resolveExclusions(ctx context.Context, query *dto.RecommendationQuery) ([]string, []string, error) {
	if len(query.ExcludeAllergens) > 0 || len(query.ExcludeDiets) > 0 {
		return query.ExcludeAllergens, query.ExcludeDiets, nil
	}
	if query.UserId == "" {
		return nil, nil, nil
	}

	profile, err := s.profileGateway.FetchProfile(ctx, query.UserId)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			s.logger.Warn("recommendation_service", "User profile not found, skipping personalization filters", map[string]interface{}{
				"userId": query.UserId,
			})
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return profile.Allergens, profile.DietaryPrefs, nil
}

// candidateCodes extracts the natural keys in score order, dropping
// payloads without one, deduplicating and truncating to limit.
func (s *recommendationService) candidateCodes(candidates []*model.VectorCandidate, limit uint64) []string {
	seen := make(map[string]struct{}, len(candidates))
	codes := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Code == nil || *candidate.Code == "" {
			s.logger.Warn("recommendation_service", "Similarity candidate has no product code in payload", map[string]interface{}{
				"pointId": candidate.PointId,
			})
			continue
		}
		if _, dup := seen[*candidate.Code]; dup {
			continue
		}
		seen[*candidate.Code] = struct{}{}
		codes = append(codes, *candidate.Code)
		if uint64(len(codes)) == limit {
			break
		}
	}
	return codes
}

// exclusionTags expands allergen tokens and diet preferences into the
// deduplicated label tags the vector search must reject.
func exclusionTags(allergens, diets []string) []string {
	var tags []string
	for _, allergen := range allergens {
		token := strings.ToLower(strings.TrimSpace(allergen))
		if token == "" {
			continue
		}
		tags = append(tags, constant.AllergenConflictTags(token)...)
	}

	normalizedDiets := make([]string, 0, len(diets))
	for _, diet := range diets {
		normalizedDiets = append(normalizedDiets, strings.ToLower(strings.TrimSpace(diet)))
	}
	tags = append(tags, constant.DietConflictTags(normalizedDiets)...)

	return uniqueSorted(tags)
}
