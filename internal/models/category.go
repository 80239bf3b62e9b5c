package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups products for catalog navigation.
type Category struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name" binding:"required"`
	Icon  string             `json:"icon,omitempty" bson:"icon,omitempty"`
	Color string             `json:"color,omitempty" bson:"color,omitempty"`
}
