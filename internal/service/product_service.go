package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/cachestore"
	"yoloeats-be/internal/pkg/logger"
	"yoloeats-be/internal/repository/contract"
)

type IProductService interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*entity.Product, error)
	GetByID(ctx context.Context, idHex string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Search(ctx context.Context, query *dto.SearchProductsQuery) ([]*entity.Product, error)
	Update(ctx context.Context, idHex string, req *dto.UpdateProductRequest) (*entity.Product, error)
	Delete(ctx context.Context, idHex string) (*dto.DeleteProductResponse, error)
}

type productService struct {
	productRepo  contract.ProductRepository
	cache        *cachestore.Store[entity.Product]
	eventService ICatalogEventService
	logger       logger.ILogger
}

func NewProductService(
	productRepo contract.ProductRepository,
	cache *cachestore.Store[entity.Product],
	eventService ICatalogEventService,
	log logger.ILogger,
) IProductService {
	return &productService{
		productRepo:  productRepo,
		cache:        cache,
		eventService: eventService,
		logger:       log,
	}
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*entity.Product, error) {
	creator := "api_create"
	source := "api_create_v1"
	product := &entity.Product{
		Code:            req.Code,
		ProductName:     req.ProductName,
		IngredientsText: req.IngredientsText,
		BrandsTags:      req.BrandsTags,
		CategoriesTags:  req.CategoriesTags,
		AllergensTags:   []string{},
		Creator:         &creator,
		Source:          &source,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.BadRequestf("Product with this code already exists")
		}
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Product store is unavailable")
	}

	s.publishUpdated(ctx, product)
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, idHex string) (*entity.Product, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.BadRequestf("Invalid product ID format: %s", idHex)
	}

	return s.cache.GetOrLoad(ctx, constant.ProductIDCacheKey(idHex), constant.ProductCacheTTL,
		func(ctx context.Context) (*entity.Product, error) {
			product, err := s.productRepo.FindByID(ctx, id)
			if err != nil {
				return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Product store is unavailable")
			}
			if product == nil {
				return nil, apperr.NotFoundf("Product with ID %s not found", idHex)
			}
			return product, nil
		})
}

func (s *productService) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	if code == "" {
		return nil, apperr.BadRequestf("Product barcode is required")
	}

	return s.cache.GetOrLoad(ctx, constant.ProductCodeCacheKey(code), constant.ProductCacheTTL,
		func(ctx context.Context) (*entity.Product, error) {
			product, err := s.productRepo.FindByCode(ctx, code)
			if err != nil {
				return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Product store is unavailable")
			}
			if product == nil {
				return nil, apperr.NotFoundf("Product with barcode %s not found", code)
			}
			return product, nil
		})
}

func (s *productService) Search(ctx context.Context, query *dto.SearchProductsQuery) ([]*entity.Product, error) {
	if query.Limit <= 0 {
		query.Limit = constant.DefaultSearchLimit
	}
	if query.Limit > constant.MaxSearchLimit {
		query.Limit = constant.MaxSearchLimit
	}
	if query.Skip < 0 {
		query.Skip = 0
	}

	products, err := s.productRepo.Search(ctx, query)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Product store is unavailable")
	}
	if products == nil {
		products = []*entity.Product{}
	}
	return products, nil
}

func (s *productService) Update(ctx context.Context, idHex string, req *dto.UpdateProductRequest) (*entity.Product, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.BadRequestf("Invalid product ID format: %s", idHex)
	}

	updated, err := s.productRepo.Update(ctx, id, req)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.BadRequestf("Update failed due to duplicate key (e.g., code already exists)")
		}
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Product store is unavailable")
	}
	if updated == nil {
		return nil, apperr.NotFoundf("Product with ID %s not found for update", idHex)
	}

	// Both lookup keys may hold the stale document.
	s.cache.Invalidate(ctx, constant.ProductIDCacheKey(idHex), constant.ProductCodeCacheKey(updated.Code))
	s.publishUpdated(ctx, updated)
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, idHex string) (*dto.DeleteProductResponse, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.BadRequestf("Invalid product ID format: %s", idHex)
	}

	// Fetch first: the code is needed for cache invalidation and the
	// deletion event once the document is gone.
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Product store is unavailable")
	}
	if product == nil {
		return nil, apperr.NotFoundf("Product with ID %s not found for deletion", idHex)
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Product store is unavailable")
	}
	if !deleted {
		return nil, apperr.NotFoundf("Product with ID %s not found for deletion", idHex)
	}

	s.cache.Invalidate(ctx, constant.ProductIDCacheKey(idHex), constant.ProductCodeCacheKey(product.Code))

	msg := &dto.ProductDeletedMessage{
		ProductId: idHex,
		Code:      product.Code,
	}
	if err := s.eventService.PublishProductDeleted(ctx, msg); err != nil {
		s.logger.Warn("product_service", "Failed to publish product deleted event", map[string]interface{}{
			"productId": idHex,
			"error":     err.Error(),
		})
	}

	return &dto.DeleteProductResponse{
		Deleted: true,
		Code:    product.Code,
	}, nil
}

func (s *productService) publishUpdated(ctx context.Context, product *entity.Product) {
	msg := &dto.ProductUpdatedMessage{
		ProductId:  product.Id.Hex(),
		Code:       product.Code,
		LabelsTags: product.LabelsTags,
	}
	if err := s.eventService.PublishProductUpdated(ctx, msg); err != nil {
		s.logger.Warn("product_service", "Failed to publish product updated event", map[string]interface{}{
			"productId": msg.ProductId,
			"error":     err.Error(),
		})
	}
}
