package contract

import (
	"context"

	"yoloeats-be/internal/model"
)

type GraphRepository interface {
	// FindConflicts batch-matches the candidate ingredient names against the
	// knowledge graph, restricted to the user's allergen and diet names.
	FindConflicts(ctx context.Context, ingredients, userAllergens, userDiets []string) (*model.ConflictSets, error)
	// UpsertIngredient writes an ingredient node with its relation edges.
	UpsertIngredient(ctx context.Context, name string, allergens, traceAllergens, dietConflicts []string) error
}
