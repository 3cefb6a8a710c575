package implementation

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/repository/contract"
)

type ProfileRepositoryImpl struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		collection: db.Collection(constant.ProfilesCollection),
	}
}

func (r *ProfileRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Upsert(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*entity.UserProfile, error) {
	now := time.Now().UTC()

	set := bson.M{"updated_at": now}
	if req.Username != nil {
		set["username"] = *req.Username
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Allergens != nil {
		set["allergens"] = req.Allergens
	}
	if req.DietaryPrefs != nil {
		set["dietary_prefs"] = req.DietaryPrefs
	}
	if req.RiskTolerance != nil {
		set["risk_tolerance"] = *req.RiskTolerance
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"created_at": now,
		},
	}

	var updated entity.UserProfile
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}
