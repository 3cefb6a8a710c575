package implementation

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/repository/contract"
)

type ProductRepositoryImpl struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) contract.ProductRepository {
	return &ProductRepositoryImpl{
		collection: db.Collection(constant.ProductsCollection),
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.LastModifiedAt = now

	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.Id = oid
	}
	return nil
}

func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ProductRepositoryImpl) FindByCode(ctx context.Context, code string) (*entity.Product, error) {
	return r.findOne(ctx, bson.M{"code": code})
}

func (r *ProductRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*entity.Product, error) {
	var product entity.Product
	err := r.collection.FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) FindByCodes(ctx context.Context, codes []string, limit int64) ([]*entity.Product, error) {
	if len(codes) == 0 {
		return []*entity.Product{}, nil
	}

	cursor, err := r.collection.Find(ctx,
		bson.M{"code": bson.M{"$in": codes}},
		options.Find().SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepositoryImpl) Search(ctx context.Context, query *dto.SearchProductsQuery) ([]*entity.Product, error) {
	filter := bson.M{}

	if query.Name != "" {
		filter["product_name"] = primitive.Regex{Pattern: regexp.QuoteMeta(query.Name), Options: "i"}
	}
	if query.Category != "" {
		filter["categories_tags"] = query.Category
	}
	if query.Brand != "" {
		filter["brands_tags"] = query.Brand
	}
	if query.Country != "" {
		filter["countries_tags"] = query.Country
	}
	if query.Nutriscore != "" {
		filter["nutrition_grade_fr"] = strings.ToLower(query.Nutriscore)
	}
	if len(query.Allergens) > 0 {
		filter["allergens_tags"] = bson.M{"$nin": query.Allergens}
	}

	// Label equality and diet exclusions both constrain labels_tags, so they
	// share one operator document.
	labelsCond := bson.M{}
	if query.Label != "" {
		labelsCond["$eq"] = query.Label
	}
	if dietTags := constant.DietConflictTags(query.Diets); len(dietTags) > 0 {
		labelsCond["$nin"] = dietTags
	}
	if len(labelsCond) > 0 {
		filter["labels_tags"] = labelsCond
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetLimit(query.Limit).SetSkip(query.Skip),
	)
	if err != nil {
		return nil, err
	}

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, req *dto.UpdateProductRequest) (*entity.Product, error) {
	set := bson.M{"last_modified_datetime": time.Now().UTC()}

	if req.ProductName != nil {
		set["product_name"] = *req.ProductName
	}
	if req.GenericName != nil {
		set["generic_name"] = *req.GenericName
	}
	if req.ImageUrl != nil {
		set["image_url"] = *req.ImageUrl
	}
	if req.IngredientsText != nil {
		set["ingredients_text"] = *req.IngredientsText
	}
	if req.BrandsTags != nil {
		set["brands_tags"] = req.BrandsTags
	}
	if req.CategoriesTags != nil {
		set["categories_tags"] = req.CategoriesTags
	}
	if req.LabelsTags != nil {
		set["labels_tags"] = req.LabelsTags
	}
	if req.TracesTags != nil {
		set["traces_tags"] = req.TracesTags
	}
	if req.AllergensTags != nil {
		set["allergens_tags"] = req.AllergensTags
	}
	if req.Quantity != nil {
		set["quantity"] = *req.Quantity
	}
	if req.CountriesTags != nil {
		set["countries_tags"] = req.CountriesTags
	}
	if req.NutritionGradeFr != nil {
		set["nutrition_grade_fr"] = *req.NutritionGradeFr
	}

	var updated entity.Product
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
