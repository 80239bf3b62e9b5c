package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sfailla/ecommerce-shop/internal/models"
)

// UserMongo extends the generic store with email lookup for login.
type UserMongo struct {
	*Mongo[models.User]
}

// NewUserMongo creates the user store. Ids are assigned client-side so the
// created document is returned, and tokens minted, with the real id.
func NewUserMongo(collection *mongo.Collection) *UserMongo {
	return &UserMongo{
		Mongo: NewMongo(collection, func(u *models.User) {
			u.ID = primitive.NewObjectID()
		}),
	}
}

// FindByEmail returns the user registered with the given email address.
func (s *UserMongo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user models.User
	if err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
