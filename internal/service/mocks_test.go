package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/model"
	"yoloeats-be/internal/pkg/cachestore"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type memCache struct {
	data map[string]string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	value, ok := m.data[key]
	if !ok {
		return "", cachestore.ErrCacheMiss
	}
	return value, nil
}

func (m *memCache) SetWithTTL(_ context.Context, key, value string, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) (int64, error) {
	var count int64
	for _, key := range keys {
		if _, ok := m.data[key]; ok {
			delete(m.data, key)
			count++
		}
	}
	return count, nil
}

type fakeProductRepo struct {
	createFn      func(ctx context.Context, product *entity.Product) error
	findByIDFn    func(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)
	findByCodeFn  func(ctx context.Context, code string) (*entity.Product, error)
	findByCodesFn func(ctx context.Context, codes []string, limit int64) ([]*entity.Product, error)
	searchFn      func(ctx context.Context, query *dto.SearchProductsQuery) ([]*entity.Product, error)
	updateFn      func(ctx context.Context, id primitive.ObjectID, req *dto.UpdateProductRequest) (*entity.Product, error)
	deleteFn      func(ctx context.Context, id primitive.ObjectID) (bool, error)
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, product)
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeProductRepo) FindByCode(ctx context.Context, code string) (*entity.Product, error) {
	if f.findByCodeFn == nil {
		return nil, nil
	}
	return f.findByCodeFn(ctx, code)
}

func (f *fakeProductRepo) FindByCodes(ctx context.Context, codes []string, limit int64) ([]*entity.Product, error) {
	if f.findByCodesFn == nil {
		return []*entity.Product{}, nil
	}
	return f.findByCodesFn(ctx, codes, limit)
}

func (f *fakeProductRepo) Search(ctx context.Context, query *dto.SearchProductsQuery) ([]*entity.Product, error) {
	if f.searchFn == nil {
		return []*entity.Product{}, nil
	}
	return f.searchFn(ctx, query)
}

func (f *fakeProductRepo) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateProductRequest) (*entity.Product, error) {
	if f.updateFn == nil {
		return nil, nil
	}
	return f.updateFn(ctx, id, req)
}

func (f *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if f.deleteFn == nil {
		return false, nil
	}
	return f.deleteFn(ctx, id)
}

type fakeVectorRepo struct {
	getVectorFn     func(ctx context.Context, pointID string) ([]float32, bool, error)
	searchSimilarFn func(ctx context.Context, vector []float32, excludePointIDs, excludeTags []string, limit uint64) ([]*model.VectorCandidate, error)
	upsertPointFn   func(ctx context.Context, pointID string, vector []float32, code string, labelsTags []string) error
	setPayloadFn    func(ctx context.Context, pointID, code string, labelsTags []string) error
	deletePointsFn  func(ctx context.Context, pointIDs []string) error
}

func (f *fakeVectorRepo) GetPointVector(ctx context.Context, pointID string) ([]float32, bool, error) {
	if f.getVectorFn == nil {
		return nil, false, nil
	}
	return f.getVectorFn(ctx, pointID)
}

func (f *fakeVectorRepo) SearchSimilar(ctx context.Context, vector []float32, excludePointIDs, excludeTags []string, limit uint64) ([]*model.VectorCandidate, error) {
	if f.searchSimilarFn == nil {
		return nil, nil
	}
	return f.searchSimilarFn(ctx, vector, excludePointIDs, excludeTags, limit)
}

func (f *fakeVectorRepo) UpsertPoint(ctx context.Context, pointID string, vector []float32, code string, labelsTags []string) error {
	if f.upsertPointFn == nil {
		return nil
	}
	return f.upsertPointFn(ctx, pointID, vector, code, labelsTags)
}

func (f *fakeVectorRepo) SetPointPayload(ctx context.Context, pointID, code string, labelsTags []string) error {
	if f.setPayloadFn == nil {
		return nil
	}
	return f.setPayloadFn(ctx, pointID, code, labelsTags)
}

func (f *fakeVectorRepo) DeletePoints(ctx context.Context, pointIDs []string) error {
	if f.deletePointsFn == nil {
		return nil
	}
	return f.deletePointsFn(ctx, pointIDs)
}

type fakeProfileGateway struct {
	fetchFn func(ctx context.Context, userID string) (*dto.ProfilePeerResponse, error)
	calls   int
}

func (f *fakeProfileGateway) FetchProfile(ctx context.Context, userID string) (*dto.ProfilePeerResponse, error) {
	f.calls++
	if f.fetchFn == nil {
		return nil, nil
	}
	return f.fetchFn(ctx, userID)
}

type fakeCatalogGateway struct {
	fetchFn func(ctx context.Context, code string) (*entity.Product, error)
}

func (f *fakeCatalogGateway) FetchProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	if f.fetchFn == nil {
		return nil, nil
	}
	return f.fetchFn(ctx, code)
}

type fakeGraphRepo struct {
	findConflictsFn func(ctx context.Context, ingredients, userAllergens, userDiets []string) (*model.ConflictSets, error)

	calls          int
	lastCandidates []string
	lastAllergens  []string
	lastDiets      []string
}

func (f *fakeGraphRepo) FindConflicts(ctx context.Context, ingredients, userAllergens, userDiets []string) (*model.ConflictSets, error) {
	f.calls++
	f.lastCandidates = ingredients
	f.lastAllergens = userAllergens
	f.lastDiets = userDiets
	if f.findConflictsFn == nil {
		return &model.ConflictSets{}, nil
	}
	return f.findConflictsFn(ctx, ingredients, userAllergens, userDiets)
}

func (f *fakeGraphRepo) UpsertIngredient(ctx context.Context, name string, allergens, traceAllergens, dietConflicts []string) error {
	return nil
}

type fakeProfileRepo struct {
	findFn   func(ctx context.Context, userID string) (*entity.UserProfile, error)
	upsertFn func(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*entity.UserProfile, error)
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	if f.findFn == nil {
		return nil, nil
	}
	return f.findFn(ctx, userID)
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*entity.UserProfile, error) {
	if f.upsertFn == nil {
		return nil, nil
	}
	return f.upsertFn(ctx, userID, req)
}

type fakeEventService struct {
	updated []*dto.ProductUpdatedMessage
	deleted []*dto.ProductDeletedMessage
	err     error
}

func (f *fakeEventService) PublishProductUpdated(_ context.Context, msg *dto.ProductUpdatedMessage) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, msg)
	return nil
}

func (f *fakeEventService) PublishProductDeleted(_ context.Context, msg *dto.ProductDeletedMessage) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, msg)
	return nil
}

func strPtr(s string) *string { return &s }
