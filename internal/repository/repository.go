package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no document matches the given criteria.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when an id is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid document id")
)

const (
	defaultTimeout = 5 * time.Second
	queryTimeout   = 10 * time.Second
)

// Mongo is a generic document store over a single collection. Server-assigned
// fields (id, timestamps) are set by the onCreate hook before insertion.
type Mongo[T any] struct {
	collection *mongo.Collection
	onCreate   func(*T)
}

// NewMongo creates a store for the collection. onCreate may be nil when the
// entity has no server-assigned fields beyond its id.
func NewMongo[T any](collection *mongo.Collection, onCreate func(*T)) *Mongo[T] {
	return &Mongo[T]{
		collection: collection,
		onCreate:   onCreate,
	}
}

// Count returns the number of stored documents. Zero is a valid count, not
// an error.
func (s *Mongo[T]) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return s.collection.CountDocuments(ctx, bson.M{})
}

// FindAll returns every document matching the filter. An empty filter
// returns the whole collection.
func (s *Mongo[T]) FindAll(ctx context.Context, filter bson.M) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID returns the single document with the given id.
func (s *Mongo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc T
	if err := s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Create persists a new document, assigning server-side fields first.
func (s *Mongo[T]) Create(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.onCreate != nil {
		s.onCreate(doc)
	}

	_, err := s.collection.InsertOne(ctx, doc)
	return err
}

// UpdateByID applies a partial update and returns the post-update document.
func (s *Mongo[T]) UpdateByID(ctx context.Context, id string, fields bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": fields}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// DeleteByID removes the document and returns it as it existed before
// deletion.
func (s *Mongo[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc T
	if err := s.collection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}
