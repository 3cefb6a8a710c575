package implementation

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"yoloeats-be/internal/model"
	"yoloeats-be/internal/repository/contract"
)

// conflictQuery batch-matches every candidate ingredient name and collects
// the relation targets restricted to the user's own allergen and diet
// names. Ingredients the graph does not know contribute nothing.
const conflictQuery = `
UNWIND $ingredientNames AS ingredientName
MATCH (i:Ingredient {name: ingredientName})
OPTIONAL MATCH (i)-[:IS_ALLERGEN]->(a:Allergen)
	WHERE a.name IN $userAllergens
OPTIONAL MATCH (i)-[:MAY_CONTAIN_TRACE]->(ta:Allergen)
	WHERE ta.name IN $userAllergens
OPTIONAL MATCH (i)-[:CONFLICTS_WITH_DIET]->(d:DietaryPreference)
	WHERE d.name IN $userDiets
RETURN
	collect(DISTINCT a.name) AS conflictingAllergens,
	collect(DISTINCT ta.name) AS traceAllergens,
	collect(DISTINCT d.name) AS conflictingDiets`

// upsertIngredientQuery merges one ingredient node with its relation edges.
// FOREACH keeps empty relation lists from cancelling the whole write.
const upsertIngredientQuery = `
MERGE (i:Ingredient {name: $name})
FOREACH (allergenName IN $allergens |
	MERGE (a:Allergen {name: allergenName})
	MERGE (i)-[:IS_ALLERGEN]->(a))
FOREACH (traceName IN $traces |
	MERGE (t:Allergen {name: traceName})
	MERGE (i)-[:MAY_CONTAIN_TRACE]->(t))
FOREACH (dietName IN $diets |
	MERGE (d:DietaryPreference {name: dietName})
	MERGE (i)-[:CONFLICTS_WITH_DIET]->(d))`

type GraphRepositoryImpl struct {
	driver neo4j.DriverWithContext
}

func NewGraphRepository(driver neo4j.DriverWithContext) contract.GraphRepository {
	return &GraphRepositoryImpl{driver: driver}
}

func (r *GraphRepositoryImpl) FindConflicts(ctx context.Context, ingredients, userAllergens, userDiets []string) (*model.ConflictSets, error) {
	result, err := neo4j.ExecuteQuery(ctx, r.driver, conflictQuery,
		map[string]any{
			"ingredientNames": ingredients,
			"userAllergens":   userAllergens,
			"userDiets":       userDiets,
		},
		neo4j.EagerResultTransformer,
	)
	if err != nil {
		return nil, err
	}

	sets := &model.ConflictSets{}
	for _, record := range result.Records {
		sets.ConflictingAllergens = append(sets.ConflictingAllergens, recordStringList(record, "conflictingAllergens")...)
		sets.TraceAllergens = append(sets.TraceAllergens, recordStringList(record, "traceAllergens")...)
		sets.ConflictingDiets = append(sets.ConflictingDiets, recordStringList(record, "conflictingDiets")...)
	}
	return sets, nil
}

func (r *GraphRepositoryImpl) UpsertIngredient(ctx context.Context, name string, allergens, traceAllergens, dietConflicts []string) error {
	_, err := neo4j.ExecuteQuery(ctx, r.driver, upsertIngredientQuery,
		map[string]any{
			"name":      name,
			"allergens": allergens,
			"traces":    traceAllergens,
			"diets":     dietConflicts,
		},
		neo4j.EagerResultTransformer,
	)
	return err
}

func recordStringList(record *neo4j.Record, key string) []string {
	raw, ok := record.Get(key)
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
