package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is an embedded line item. Product references are not validated
// against the products collection at order time.
type OrderItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

// Order represents a placed order.
type Order struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderItems       []OrderItem        `json:"orderItems" bson:"orderItems"`
	ShippingAddress1 string             `json:"shippingAddress1,omitempty" bson:"shippingAddress1,omitempty"`
	ShippingAddress2 string             `json:"shippingAddress2,omitempty" bson:"shippingAddress2,omitempty"`
	City             string             `json:"city,omitempty" bson:"city,omitempty"`
	Zip              string             `json:"zip,omitempty" bson:"zip,omitempty"`
	Country          string             `json:"country,omitempty" bson:"country,omitempty"`
	Phone            string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Status           string             `json:"status" bson:"status"`
	TotalPrice       float64            `json:"totalPrice" bson:"totalPrice"`
	User             primitive.ObjectID `json:"user,omitempty" bson:"user,omitempty"`
	DateOrdered      time.Time          `json:"dateOrdered" bson:"dateOrdered"`
}
