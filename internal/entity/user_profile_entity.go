package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type UserProfile struct {
	Id primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	UserId string `bson:"user_id" json:"userId"`

	Username *string `bson:"username,omitempty" json:"username,omitempty"`
	Email    *string `bson:"email,omitempty" json:"email,omitempty"`

	Allergens    []string `bson:"allergens" json:"allergens"`
	DietaryPrefs []string `bson:"dietary_prefs" json:"dietaryPrefs"`

	RiskTolerance RiskLevel `bson:"risk_tolerance" json:"riskTolerance"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
