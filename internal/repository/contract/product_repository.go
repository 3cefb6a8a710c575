package contract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// FindByID and FindByCode return (nil, nil) when no document matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)
	FindByCode(ctx context.Context, code string) (*entity.Product, error)
	// FindByCodes is the batched hydration lookup for recommendations.
	FindByCodes(ctx context.Context, codes []string, limit int64) ([]*entity.Product, error)
	Search(ctx context.Context, query *dto.SearchProductsQuery) ([]*entity.Product, error)
	// Update applies the non-nil fields and returns the updated document,
	// or (nil, nil) when no document matches.
	Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateProductRequest) (*entity.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
