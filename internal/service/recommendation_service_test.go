package service

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/model"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/pointid"
)

const sourceProductHex = "65f2a77f9d1e8b0001a3c111"

func codePtr(s string) *string { return &s }

func TestExclusionTags(t *testing.T) {
	tests := []struct {
		name      string
		allergens []string
		diets     []string
		want      []string
	}{
		{
			name: "empty input",
			want: []string{},
		},
		{
			name:      "single allergen expands to tag variants",
			allergens: []string{"milk"},
			want:      []string{"en:contains-milk", "en:milk", "milk"},
		},
		{
			name:      "allergen tokens normalized and deduplicated",
			allergens: []string{" Milk ", "MILK"},
			want:      []string{"en:contains-milk", "en:milk", "milk"},
		},
		{
			name:      "blank allergen dropped",
			allergens: []string{"  "},
			want:      []string{},
		},
		{
			name:  "gluten free diet",
			diets: []string{"gluten_free"},
			want:  []string{"en:contains-gluten", "en:gluten"},
		},
		{
			name:  "vegan subsumes vegetarian",
			diets: []string{"vegan", "vegetarian"},
			want: []string{
				"en:contains-eggs", "en:contains-fish", "en:contains-honey",
				"en:contains-meat", "en:contains-milk", "en:dairy", "en:eggs",
				"en:fish", "en:honey", "en:meat", "en:non-vegan",
				"en:non-vegetarian", "en:vegetarian-status-unknown",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exclusionTags(tt.allergens, tt.diets)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("exclusionTags = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecommendInvalidProductID(t *testing.T) {
	svc := NewRecommendationService(&fakeVectorRepo{}, &fakeProductRepo{}, &fakeProfileGateway{}, nopLogger{})

	_, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{ProductId: "not-a-hex"})
	if err == nil {
		t.Fatal("Recommend error = nil, want bad request")
	}
	if !apperr.IsCode(err, apperr.CodeBadRequest) {
		t.Errorf("code = %v, want CodeBadRequest", apperr.CodeOf(err))
	}
	if got := apperr.PublicMessageOf(err); got != "Invalid product ID format: not-a-hex" {
		t.Errorf("public message = %q", got)
	}
}

func TestRecommendMissingVector(t *testing.T) {
	tests := []struct {
		name   string
		vector []float32
		found  bool
	}{
		{name: "point absent", vector: nil, found: false},
		{name: "point without vector", vector: []float32{}, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vectors := &fakeVectorRepo{
				getVectorFn: func(context.Context, string) ([]float32, bool, error) {
					return tt.vector, tt.found, nil
				},
			}
			svc := NewRecommendationService(vectors, &fakeProductRepo{}, &fakeProfileGateway{}, nopLogger{})

			_, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{ProductId: sourceProductHex})
			if err == nil {
				t.Fatal("Recommend error = nil, want not found")
			}
			if !apperr.IsCode(err, apperr.CodeNotFound) {
				t.Errorf("code = %v, want CodeNotFound", apperr.CodeOf(err))
			}
			if got, want := apperr.PublicMessageOf(err), "Vector data not found for product "+sourceProductHex; got != want {
				t.Errorf("public message = %q, want %q", got, want)
			}
		})
	}
}

func TestRecommendVectorStoreFailure(t *testing.T) {
	vectors := &fakeVectorRepo{
		getVectorFn: func(context.Context, string) ([]float32, bool, error) {
			return nil, false, errors.New("connection refused")
		},
	}
	svc := NewRecommendationService(vectors, &fakeProductRepo{}, &fakeProfileGateway{}, nopLogger{})

	_, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{ProductId: sourceProductHex})
	if err == nil {
		t.Fatal("Recommend error = nil, want upstream unavailable")
	}
	if !apperr.IsCode(err, apperr.CodeUpstreamUnavailable) {
		t.Errorf("code = %v, want CodeUpstreamUnavailable", apperr.CodeOf(err))
	}
	if got := apperr.PublicMessageOf(err); got != "Vector index is unavailable" {
		t.Errorf("public message = %q", got)
	}
}

func TestRecommendPersonalizesFromProfile(t *testing.T) {
	sourcePointID := pointid.FromProductID(sourceProductHex)

	var gotExcludeIDs, gotExcludeTags []string
	var gotSearchLimit uint64
	vectors := &fakeVectorRepo{
		getVectorFn: func(context.Context, string) ([]float32, bool, error) {
			return []float32{0.1, 0.2}, true, nil
		},
		searchSimilarFn: func(_ context.Context, _ []float32, excludePointIDs, excludeTags []string, limit uint64) ([]*model.VectorCandidate, error) {
			gotExcludeIDs = excludePointIDs
			gotExcludeTags = excludeTags
			gotSearchLimit = limit
			return []*model.VectorCandidate{
				{PointId: "p1", Code: codePtr("1111111111111")},
				{PointId: "p2", Code: codePtr("2222222222222")},
			}, nil
		},
	}

	var gotCodes []string
	var gotHydrateLimit int64
	hydrated := []*entity.Product{{Code: "1111111111111"}, {Code: "2222222222222"}}
	products := &fakeProductRepo{
		findByCodesFn: func(_ context.Context, codes []string, limit int64) ([]*entity.Product, error) {
			gotCodes = codes
			gotHydrateLimit = limit
			return hydrated, nil
		},
	}

	profiles := &fakeProfileGateway{
		fetchFn: func(context.Context, string) (*dto.ProfilePeerResponse, error) {
			return &dto.ProfilePeerResponse{
				UserId:       "user-1",
				Allergens:    []string{" Milk "},
				DietaryPrefs: []string{"gluten_free"},
			}, nil
		},
	}

	svc := NewRecommendationService(vectors, products, profiles, nopLogger{})
	result, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{
		ProductId: sourceProductHex,
		UserId:    "user-1",
	})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	if !reflect.DeepEqual(gotExcludeIDs, []string{sourcePointID}) {
		t.Errorf("excluded point ids = %v, want [%s]", gotExcludeIDs, sourcePointID)
	}
	wantTags := []string{"en:contains-gluten", "en:contains-milk", "en:gluten", "en:milk", "milk"}
	if !reflect.DeepEqual(gotExcludeTags, wantTags) {
		t.Errorf("exclude tags = %v, want %v", gotExcludeTags, wantTags)
	}
	if gotSearchLimit != constant.RecommendationOverfetchLimit {
		t.Errorf("search limit = %d, want %d", gotSearchLimit, constant.RecommendationOverfetchLimit)
	}
	if !reflect.DeepEqual(gotCodes, []string{"1111111111111", "2222222222222"}) {
		t.Errorf("hydrated codes = %v", gotCodes)
	}
	if gotHydrateLimit != constant.DefaultRecommendationLimit {
		t.Errorf("hydrate limit = %d, want %d", gotHydrateLimit, constant.DefaultRecommendationLimit)
	}
	if !reflect.DeepEqual(result, hydrated) {
		t.Errorf("result = %v, want %v", result, hydrated)
	}
}

func TestRecommendExplicitFiltersSkipProfileLookup(t *testing.T) {
	var gotExcludeTags []string
	vectors := &fakeVectorRepo{
		getVectorFn: func(context.Context, string) ([]float32, bool, error) {
			return []float32{0.1}, true, nil
		},
		searchSimilarFn: func(_ context.Context, _ []float32, _, excludeTags []string, _ uint64) ([]*model.VectorCandidate, error) {
			gotExcludeTags = excludeTags
			return nil, nil
		},
	}
	profiles := &fakeProfileGateway{}

	svc := NewRecommendationService(vectors, &fakeProductRepo{}, profiles, nopLogger{})
	_, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{
		ProductId:        sourceProductHex,
		UserId:           "user-1",
		ExcludeAllergens: []string{"peanuts"},
	})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	if profiles.calls != 0 {
		t.Errorf("profile fetched %d times, want 0 when explicit filters given", profiles.calls)
	}
	want := []string{"en:contains-peanuts", "en:peanuts", "peanuts"}
	if !reflect.DeepEqual(gotExcludeTags, want) {
		t.Errorf("exclude tags = %v, want %v", gotExcludeTags, want)
	}
}

func TestRecommendProfileNotFoundSkipsFilters(t *testing.T) {
	var gotExcludeTags []string
	vectors := &fakeVectorRepo{
		getVectorFn: func(context.Context, string) ([]float32, bool, error) {
			return []float32{0.1}, true, nil
		},
		searchSimilarFn: func(_ context.Context, _ []float32, _, excludeTags []string, _ uint64) ([]*model.VectorCandidate, error) {
			gotExcludeTags = excludeTags
			return nil, nil
		},
	}
	profiles := &fakeProfileGateway{
		fetchFn: func(context.Context, string) (*dto.ProfilePeerResponse, error) {
			return nil, apperr.NotFoundf("User profile not found")
		},
	}

	svc := NewRecommendationService(vectors, &fakeProductRepo{}, profiles, nopLogger{})
	result, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{
		ProductId: sourceProductHex,
		UserId:    "user-1",
	})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	if len(gotExcludeTags) != 0 {
		t.Errorf("exclude tags = %v, want none without a profile", gotExcludeTags)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("result = %v, want empty list", result)
	}
}

func TestRecommendProfileUnavailablePropagates(t *testing.T) {
	vectors := &fakeVectorRepo{
		getVectorFn: func(context.Context, string) ([]float32, bool, error) {
			return []float32{0.1}, true, nil
		},
		searchSimilarFn: func(context.Context, []float32, []string, []string, uint64) ([]*model.VectorCandidate, error) {
			t.Error("similarity search ran despite profile failure")
			return nil, nil
		},
	}
	profiles := &fakeProfileGateway{
		fetchFn: func(context.Context, string) (*dto.ProfilePeerResponse, error) {
			return nil, apperr.Unavailablef("User profile service is unreachable")
		},
	}

	svc := NewRecommendationService(vectors, &fakeProductRepo{}, profiles, nopLogger{})
	_, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{
		ProductId: sourceProductHex,
		UserId:    "user-1",
	})
	if err == nil {
		t.Fatal("Recommend error = nil, want upstream unavailable")
	}
	if !apperr.IsCode(err, apperr.CodeUpstreamUnavailable) {
		t.Errorf("code = %v, want CodeUpstreamUnavailable", apperr.CodeOf(err))
	}
}

func TestRecommendCandidateCodeHandling(t *testing.T) {
	vectors := &fakeVectorRepo{
		getVectorFn: func(context.Context, string) ([]float32, bool, error) {
			return []float32{0.1}, true, nil
		},
		searchSimilarFn: func(context.Context, []float32, []string, []string, uint64) ([]*model.VectorCandidate, error) {
			return []*model.VectorCandidate{
				{PointId: "p0"},
				{PointId: "p1", Code: codePtr("")},
				{PointId: "p2", Code: codePtr("1111111111111")},
				{PointId: "p3", Code: codePtr("1111111111111")},
				{PointId: "p4", Code: codePtr("2222222222222")},
				{PointId: "p5", Code: codePtr("3333333333333")},
			}, nil
		},
	}

	var gotCodes []string
	var gotLimit int64
	products := &fakeProductRepo{
		findByCodesFn: func(_ context.Context, codes []string, limit int64) ([]*entity.Product, error) {
			gotCodes = codes
			gotLimit = limit
			return []*entity.Product{{Code: "1111111111111"}, {Code: "2222222222222"}}, nil
		},
	}

	svc := NewRecommendationService(vectors, products, &fakeProfileGateway{}, nopLogger{})
	result, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{
		ProductId: sourceProductHex,
		Limit:     2,
	})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}

	// Codeless payloads dropped, duplicates collapsed, score order kept,
	// truncated at the requested limit.
	if !reflect.DeepEqual(gotCodes, []string{"1111111111111", "2222222222222"}) {
		t.Errorf("hydrated codes = %v, want [1111111111111 2222222222222]", gotCodes)
	}
	if gotLimit != 2 {
		t.Errorf("hydrate limit = %d, want 2", gotLimit)
	}
	if len(result) != 2 {
		t.Errorf("result length = %d, want 2", len(result))
	}
}

func TestRecommendLimitBounds(t *testing.T) {
	tests := []struct {
		name      string
		limit     uint64
		wantLimit int64
	}{
		{name: "zero falls back to default", limit: 0, wantLimit: constant.DefaultRecommendationLimit},
		{name: "oversized request capped", limit: 500, wantLimit: constant.MaxRecommendationLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vectors := &fakeVectorRepo{
				getVectorFn: func(context.Context, string) ([]float32, bool, error) {
					return []float32{0.1}, true, nil
				},
				searchSimilarFn: func(context.Context, []float32, []string, []string, uint64) ([]*model.VectorCandidate, error) {
					return []*model.VectorCandidate{{PointId: "p1", Code: codePtr("1111111111111")}}, nil
				},
			}

			var gotLimit int64
			products := &fakeProductRepo{
				findByCodesFn: func(_ context.Context, codes []string, limit int64) ([]*entity.Product, error) {
					gotLimit = limit
					return []*entity.Product{{Code: "1111111111111"}}, nil
				},
			}

			svc := NewRecommendationService(vectors, products, &fakeProfileGateway{}, nopLogger{})
			_, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{
				ProductId: sourceProductHex,
				Limit:     tt.limit,
			})
			if err != nil {
				t.Fatalf("Recommend error: %v", err)
			}
			if gotLimit != tt.wantLimit {
				t.Errorf("hydrate limit = %d, want %d", gotLimit, tt.wantLimit)
			}
		})
	}
}

func TestRecommendNoCandidatesReturnsEmptyList(t *testing.T) {
	vectors := &fakeVectorRepo{
		getVectorFn: func(context.Context, string) ([]float32, bool, error) {
			return []float32{0.1}, true, nil
		},
	}
	products := &fakeProductRepo{
		findByCodesFn: func(context.Context, []string, int64) ([]*entity.Product, error) {
			t.Error("hydration ran without candidate codes")
			return nil, nil
		},
	}

	svc := NewRecommendationService(vectors, products, &fakeProfileGateway{}, nopLogger{})
	result, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{ProductId: sourceProductHex})
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("result = %v, want empty list", result)
	}
}

func TestRecommendHydrationFailure(t *testing.T) {
	vectors := &fakeVectorRepo{
		getVectorFn: func(context.Context, string) ([]float32, bool, error) {
			return []float32{0.1}, true, nil
		},
		searchSimilarFn: func(context.Context, []float32, []string, []string, uint64) ([]*model.VectorCandidate, error) {
			return []*model.VectorCandidate{{PointId: "p1", Code: codePtr("1111111111111")}}, nil
		},
	}
	products := &fakeProductRepo{
		findByCodesFn: func(context.Context, []string, int64) ([]*entity.Product, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewRecommendationService(vectors, products, &fakeProfileGateway{}, nopLogger{})
	_, err := svc.Recommend(context.Background(), &dto.RecommendationQuery{ProductId: sourceProductHex})
	if err == nil {
		t.Fatal("Recommend error = nil, want upstream unavailable")
	}
	if !apperr.IsCode(err, apperr.CodeUpstreamUnavailable) {
		t.Errorf("code = %v, want CodeUpstreamUnavailable", apperr.CodeOf(err))
	}
	if got := apperr.PublicMessageOf(err); got != "Product store is unavailable" {
		t.Errorf("public message = %q", got)
	}
}

func TestExclusionTagsSorted(t *testing.T) {
	got := exclusionTags([]string{"peanuts", "milk"}, []string{"vegan", "lactose_free"})
	if !sort.StringsAreSorted(got) {
		t.Errorf("exclusionTags not sorted: %v", got)
	}
	seen := make(map[string]struct{}, len(got))
	for _, tag := range got {
		if _, dup := seen[tag]; dup {
			t.Errorf("duplicate tag %q in %v", tag, got)
		}
		seen[tag] = struct{}{}
	}
}
