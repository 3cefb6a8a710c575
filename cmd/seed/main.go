package main

import (
	"context"
	"log"

	"github.com/qdrant/go-client/qdrant"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yoloeats-be/internal/config"
	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/pkg/pointid"
	"yoloeats-be/internal/repository/contract"
	"yoloeats-be/internal/repository/implementation"
	"yoloeats-be/pkg/database"
)

type productFixture struct {
	product entity.Product
	vector  []float32
}

type ingredientFixture struct {
	name          string
	allergens     []string
	traces        []string
	dietConflicts []string
}

func strPtr(s string) *string { return &s }

func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		log.Fatalf("Error: invalid fixture ObjectID %s: %v", hex, err)
	}
	return id
}

// Fixture products follow the OpenFoodFacts document shape. Ids are fixed so
// vector point ids stay stable across reseeds.
var productFixtures = []productFixture{
	{
		product: entity.Product{
			Id:               mustObjectID("65f2a77f9d1e8b0001a3c111"),
			Code:             "3017620422003",
			ProductName:      strPtr("Hazelnut Cocoa Spread"),
			GenericName:      strPtr("Chocolate hazelnut spread"),
			BrandsTags:       []string{"ferrero"},
			CategoriesTags:   []string{"en:breakfasts", "en:spreads", "en:sweet-spreads"},
			MainCategory:     strPtr("en:sweet-spreads"),
			LabelsTags:       []string{"en:gluten-free", "en:contains-milk"},
			IngredientsText:  strPtr("Sugar, palm oil, hazelnuts, skimmed milk powder, fat-reduced cocoa, soya lecithin, vanillin"),
			TracesTags:       []string{"nuts"},
			AllergensTags:    []string{"en:milk", "en:nuts", "en:soybeans"},
			Quantity:         strPtr("400 g"),
			CountriesTags:    []string{"en:france", "en:germany"},
			NutritionGradeFr: strPtr("e"),
			Creator:          strPtr("seed"),
			Source:           strPtr("seed_v1"),
		},
		vector: []float32{0.82, 0.11, 0.05, 0.67, 0.24, 0.91, 0.33, 0.48},
	},
	{
		product: entity.Product{
			Id:               mustObjectID("65f2a77f9d1e8b0001a3c222"),
			Code:             "0051500255162",
			ProductName:      strPtr("Crunchy Peanut Butter"),
			GenericName:      strPtr("Peanut butter"),
			BrandsTags:       []string{"skippy"},
			CategoriesTags:   []string{"en:breakfasts", "en:spreads", "en:peanut-butters"},
			MainCategory:     strPtr("en:peanut-butters"),
			LabelsTags:       []string{"en:vegan", "en:vegetarian", "en:gluten-free"},
			IngredientsText:  strPtr("Roasted peanuts, sugar, palm oil, salt"),
			TracesTags:       []string{"nuts"},
			AllergensTags:    []string{"en:peanuts"},
			Quantity:         strPtr("340 g"),
			CountriesTags:    []string{"en:united-states"},
			NutritionGradeFr: strPtr("c"),
			Creator:          strPtr("seed"),
			Source:           strPtr("seed_v1"),
		},
		vector: []float32{0.74, 0.18, 0.09, 0.61, 0.31, 0.84, 0.29, 0.52},
	},
	{
		product: entity.Product{
			Id:               mustObjectID("65f2a77f9d1e8b0001a3c333"),
			Code:             "7394376616037",
			ProductName:      strPtr("Organic Oat Drink"),
			GenericName:      strPtr("Oat based beverage"),
			BrandsTags:       []string{"oatly"},
			CategoriesTags:   []string{"en:beverages", "en:plant-based-beverages", "en:oat-drinks"},
			MainCategory:     strPtr("en:oat-drinks"),
			LabelsTags:       []string{"en:vegan", "en:vegetarian", "en:organic", "en:lactose-free"},
			IngredientsText:  strPtr("Water, oats, rapeseed oil, sea salt"),
			AllergensTags:    []string{"en:gluten"},
			Quantity:         strPtr("1 L"),
			CountriesTags:    []string{"en:sweden"},
			NutritionGradeFr: strPtr("b"),
			Creator:          strPtr("seed"),
			Source:           strPtr("seed_v1"),
		},
		vector: []float32{0.12, 0.88, 0.76, 0.09, 0.55, 0.14, 0.67, 0.21},
	},
	{
		product: entity.Product{
			Id:               mustObjectID("65f2a77f9d1e8b0001a3c444"),
			Code:             "7622210449283",
			ProductName:      strPtr("Alpine Milk Chocolate"),
			GenericName:      strPtr("Milk chocolate with hazelnuts"),
			BrandsTags:       []string{"milka"},
			CategoriesTags:   []string{"en:snacks", "en:chocolates", "en:milk-chocolates"},
			MainCategory:     strPtr("en:milk-chocolates"),
			LabelsTags:       []string{"en:contains-milk"},
			IngredientsText:  strPtr("Sugar, cocoa butter, skimmed milk powder, cocoa mass, butter, hazelnuts, soya lecithin"),
			AllergensTags:    []string{"en:milk", "en:nuts", "en:soybeans"},
			Quantity:         strPtr("100 g"),
			CountriesTags:    []string{"en:germany", "en:austria"},
			NutritionGradeFr: strPtr("e"),
			Creator:          strPtr("seed"),
			Source:           strPtr("seed_v1"),
		},
		vector: []float32{0.79, 0.14, 0.07, 0.71, 0.22, 0.88, 0.36, 0.44},
	},
	{
		product: entity.Product{
			Id:               mustObjectID("65f2a77f9d1e8b0001a3c555"),
			Code:             "5010029000115",
			ProductName:      strPtr("Wholegrain Wheat Biscuits"),
			GenericName:      strPtr("Breakfast cereal biscuits"),
			BrandsTags:       []string{"weetabix"},
			CategoriesTags:   []string{"en:breakfasts", "en:cereals", "en:biscuits"},
			MainCategory:     strPtr("en:cereals"),
			LabelsTags:       []string{"en:vegan", "en:vegetarian", "en:contains-gluten"},
			IngredientsText:  strPtr("Wheat flour, malted barley extract, sugar, salt"),
			TracesTags:       []string{"nuts"},
			AllergensTags:    []string{"en:gluten"},
			Quantity:         strPtr("430 g"),
			CountriesTags:    []string{"en:united-kingdom"},
			NutritionGradeFr: strPtr("a"),
			Creator:          strPtr("seed"),
			Source:           strPtr("seed_v1"),
		},
		vector: []float32{0.31, 0.62, 0.58, 0.27, 0.49, 0.35, 0.71, 0.18},
	},
}

// Ingredient node names match the lower-cased comma tokens the checker
// extracts from ingredients_text, plus the bare trace tag tokens. Trace tag
// tokens get MAY_CONTAIN_TRACE edges to themselves so a "may contain" tag
// stays a trace match instead of a direct one.
var ingredientFixtures = []ingredientFixture{
	{name: "sugar"},
	{name: "palm oil"},
	{name: "salt"},
	{name: "sea salt"},
	{name: "water"},
	{name: "vanillin"},
	{name: "fat-reduced cocoa"},
	{name: "cocoa butter"},
	{name: "cocoa mass"},
	{name: "rapeseed oil"},
	{name: "hazelnuts", allergens: []string{"nuts"}, traces: []string{"peanuts"}},
	{name: "skimmed milk powder", allergens: []string{"milk"}, dietConflicts: []string{"vegan", "lactose_free"}},
	{name: "milk", allergens: []string{"milk"}, dietConflicts: []string{"vegan", "lactose_free"}},
	{name: "butter", allergens: []string{"milk"}, dietConflicts: []string{"vegan", "lactose_free"}},
	{name: "soya lecithin", allergens: []string{"soybeans"}},
	{name: "roasted peanuts", allergens: []string{"peanuts"}},
	{name: "peanuts", allergens: []string{"peanuts"}},
	{name: "eggs", allergens: []string{"eggs"}, dietConflicts: []string{"vegan"}},
	{name: "honey", dietConflicts: []string{"vegan"}},
	{name: "oats", allergens: []string{"gluten"}, dietConflicts: []string{"gluten_free"}},
	{name: "wheat flour", allergens: []string{"gluten"}, dietConflicts: []string{"gluten_free"}},
	{name: "malted barley extract", allergens: []string{"gluten"}, dietConflicts: []string{"gluten_free"}},
	{name: "nuts", traces: []string{"nuts"}},
	{name: "gluten", traces: []string{"gluten"}},
}

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// 1. Seed the product catalog
	mongoClient, err := database.NewMongoClient(ctx, database.MongoConfig{URI: cfg.Mongo.URI})
	if err != nil {
		log.Fatalf("Error: Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	productRepo := implementation.NewProductRepository(mongoClient.Database(cfg.Mongo.CatalogDatabase))
	seedProducts(ctx, productRepo)

	// 2. Seed the ingredient knowledge graph
	neo4jDriver, err := database.NewNeo4jDriver(ctx, database.Neo4jConfig{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	if err != nil {
		log.Fatalf("Error: Failed to connect to Neo4j: %v", err)
	}
	defer neo4jDriver.Close(ctx)

	graphRepo := implementation.NewGraphRepository(neo4jDriver)
	seedGraph(ctx, graphRepo)

	// 3. Seed the vector index
	qdrantClient, err := database.NewQdrantClient(database.QdrantConfig{
		Host: cfg.Qdrant.Host,
		Port: cfg.Qdrant.Port,
	})
	if err != nil {
		log.Fatalf("Error: Failed to connect to Qdrant: %v", err)
	}
	defer qdrantClient.Close()

	if err := ensureCollection(ctx, qdrantClient); err != nil {
		log.Fatalf("Error: Failed to prepare Qdrant collection: %v", err)
	}

	vectorRepo := implementation.NewVectorRepository(qdrantClient, constant.QdrantCollectionName)
	seedVectors(ctx, vectorRepo)

	log.Println("Seeding completed!")
}

func seedProducts(ctx context.Context, repo contract.ProductRepository) {
	log.Println("Seeding Products...")

	for _, f := range productFixtures {
		existing, err := repo.FindByCode(ctx, f.product.Code)
		if err != nil {
			log.Printf("Error looking up product '%s': %v", f.product.Code, err)
			continue
		}
		if existing != nil {
			log.Printf("Product '%s' already exists, skipping...", f.product.Code)
			continue
		}

		product := f.product
		if err := repo.Create(ctx, &product); err != nil {
			log.Printf("Error creating product '%s': %v", product.Code, err)
		} else {
			log.Printf("Created product: %s (%s)", *product.ProductName, product.Code)
		}
	}

	log.Println("Product seeding completed!")
}

func seedGraph(ctx context.Context, repo contract.GraphRepository) {
	log.Println("Seeding Ingredient Graph...")

	for _, f := range ingredientFixtures {
		if err := repo.UpsertIngredient(ctx, f.name, f.allergens, f.traces, f.dietConflicts); err != nil {
			log.Printf("Error upserting ingredient '%s': %v", f.name, err)
		}
	}

	log.Println("Ingredient graph seeding completed!")
}

func ensureCollection(ctx context.Context, client *qdrant.Client) error {
	exists, err := client.CollectionExists(ctx, constant.QdrantCollectionName)
	if err != nil {
		return err
	}
	if exists {
		log.Printf("Collection '%s' already exists, skipping...", constant.QdrantCollectionName)
		return nil
	}

	err = client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: constant.QdrantCollectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(len(productFixtures[0].vector)),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return err
	}
	log.Printf("Created collection: %s", constant.QdrantCollectionName)
	return nil
}

func seedVectors(ctx context.Context, repo contract.VectorRepository) {
	log.Println("Seeding Product Vectors...")

	for _, f := range productFixtures {
		pointID := pointid.FromProductID(f.product.Id.Hex())
		if err := repo.UpsertPoint(ctx, pointID, f.vector, f.product.Code, f.product.LabelsTags); err != nil {
			log.Printf("Error upserting vector for product '%s': %v", f.product.Code, err)
		} else {
			log.Printf("Upserted vector for product: %s", f.product.Code)
		}
	}

	log.Println("Vector seeding completed!")
}
