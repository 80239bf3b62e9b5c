package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog product.
type Product struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name" binding:"required"`
	Description     string             `json:"description" bson:"description"`
	RichDescription string             `json:"richDescription,omitempty" bson:"richDescription,omitempty"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	Images          []string           `json:"images,omitempty" bson:"images,omitempty"`
	Brand           string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Price           float64            `json:"price" bson:"price"`
	Category        primitive.ObjectID `json:"category,omitempty" bson:"category,omitempty"`
	CountInStock    int                `json:"countInStock" bson:"countInStock"`
	Rating          float64            `json:"rating" bson:"rating"`
	NumReviews      int                `json:"numReviews" bson:"numReviews"`
	IsFeatured      bool               `json:"isFeatured" bson:"isFeatured"`
	DateCreated     time.Time          `json:"dateCreated" bson:"dateCreated"`
}
