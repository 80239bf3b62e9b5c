package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered shop user. The Password field always holds a
// bcrypt hash after creation, never the plaintext secret. The hash is
// serialized in responses, matching the contract existing clients rely on.
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" binding:"required"`
	Password  string             `json:"password" bson:"password" binding:"required"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	IsAdmin   bool               `json:"isAdmin" bson:"isAdmin"`
	Street    string             `json:"street,omitempty" bson:"street,omitempty"`
	Apartment string             `json:"apartment,omitempty" bson:"apartment,omitempty"`
	Zip       string             `json:"zip,omitempty" bson:"zip,omitempty"`
	City      string             `json:"city,omitempty" bson:"city,omitempty"`
	Country   string             `json:"country,omitempty" bson:"country,omitempty"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
