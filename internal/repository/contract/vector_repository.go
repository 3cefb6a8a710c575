package contract

import (
	"context"

	"yoloeats-be/internal/model"
)

type VectorRepository interface {
	// GetPointVector fetches the embedding for a point. found is false when
	// the point does not exist; an existing point may still carry an empty
	// vector.
	GetPointVector(ctx context.Context, pointID string) (vector []float32, found bool, err error)
	// SearchSimilar runs a similarity query excluding the given point ids
	// and any point whose tag payload intersects excludeTags.
	SearchSimilar(ctx context.Context, vector []float32, excludePointIDs []string, excludeTags []string, limit uint64) ([]*model.VectorCandidate, error)
	// UpsertPoint writes a point with its payload.
	UpsertPoint(ctx context.Context, pointID string, vector []float32, code string, labelsTags []string) error
	// SetPointPayload replaces the payload fields of an existing point.
	SetPointPayload(ctx context.Context, pointID string, code string, labelsTags []string) error
	DeletePoints(ctx context.Context, pointIDs []string) error
}
