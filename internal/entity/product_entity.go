package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product mirrors the OpenFoodFacts-shaped catalog document. BSON and JSON
// keys match the stored document so cached copies deserialize into the same
// shape the collection holds.
type Product struct {
	Id primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// Barcode, kept as string because codes carry leading zeros.
	Code string `bson:"code" json:"code"`

	ProductName    *string  `bson:"product_name,omitempty" json:"product_name,omitempty"`
	GenericName    *string  `bson:"generic_name,omitempty" json:"generic_name,omitempty"`
	BrandsTags     []string `bson:"brands_tags,omitempty" json:"brands_tags,omitempty"`
	CategoriesTags []string `bson:"categories_tags,omitempty" json:"categories_tags,omitempty"`
	MainCategory   *string  `bson:"main_category,omitempty" json:"main_category,omitempty"`
	LabelsTags     []string `bson:"labels_tags,omitempty" json:"labels_tags,omitempty"`

	IngredientsText *string  `bson:"ingredients_text,omitempty" json:"ingredients_text,omitempty"`
	TracesTags      []string `bson:"traces_tags,omitempty" json:"traces_tags,omitempty"`
	AllergensTags   []string `bson:"allergens_tags,omitempty" json:"allergens_tags,omitempty"`

	Quantity      *string  `bson:"quantity,omitempty" json:"quantity,omitempty"`
	ImageUrl      *string  `bson:"image_url,omitempty" json:"image_url,omitempty"`
	ImageSmallUrl *string  `bson:"image_small_url,omitempty" json:"image_small_url,omitempty"`
	CountriesTags []string `bson:"countries_tags,omitempty" json:"countries_tags,omitempty"`

	NutritionGradeFr *string `bson:"nutrition_grade_fr,omitempty" json:"nutrition_grade_fr,omitempty"`

	Creator *string `bson:"creator,omitempty" json:"creator,omitempty"`
	Source  *string `bson:"source,omitempty" json:"source,omitempty"`

	CreatedAt      time.Time `bson:"created_datetime" json:"created_datetime"`
	LastModifiedAt time.Time `bson:"last_modified_datetime" json:"last_modified_datetime"`
}
