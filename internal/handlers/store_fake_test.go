package handlers

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sfailla/ecommerce-shop/internal/models"
	"github.com/Sfailla/ecommerce-shop/internal/repository"
)

// memStore is an in-memory Store implementation backing handler tests.
// Documents are kept as bson maps and round-tripped through bson encoding so
// partial updates behave like they do against the real collection.
type memStore[T any] struct {
	mu   sync.Mutex
	docs map[string]bson.M
}

func newMemStore[T any]() *memStore[T] {
	return &memStore[T]{docs: make(map[string]bson.M)}
}

func toDoc[T any](v *T) (bson.M, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromDoc[T any](m bson.M) (*T, error) {
	data, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var v T
	if err := bson.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *memStore[T]) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.docs)), nil
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		if cond, ok := want.(bson.M); ok {
			if in, ok := cond["$in"]; ok {
				found := false
				vals := reflect.ValueOf(in)
				for i := 0; i < vals.Len(); i++ {
					if reflect.DeepEqual(doc[key], vals.Index(i).Interface()) {
						found = true
						break
					}
				}
				if !found {
					return false
				}
				continue
			}
		}
		if !reflect.DeepEqual(doc[key], want) {
			return false
		}
	}
	return true
}

func (s *memStore[T]) FindAll(ctx context.Context, filter bson.M) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, 0)
	for _, doc := range s.docs {
		if filter != nil && !matches(doc, filter) {
			continue
		}
		v, err := fromDoc[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *memStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return fromDoc[T](doc)
}

func (s *memStore[T]) Create(ctx context.Context, v *T) error {
	doc, err := toDoc(v)
	if err != nil {
		return err
	}

	id, ok := doc["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		doc["_id"] = id
	}

	s.mu.Lock()
	s.docs[id.Hex()] = doc
	s.mu.Unlock()

	stored, err := fromDoc[T](doc)
	if err != nil {
		return err
	}
	*v = *stored
	return nil
}

func (s *memStore[T]) UpdateByID(ctx context.Context, id string, fields bson.M) (*T, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for key, value := range fields {
		doc[key] = value
	}
	return fromDoc[T](doc)
}

func (s *memStore[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(s.docs, id)
	return fromDoc[T](doc)
}

// memUserStore adds the email lookup the user handler needs.
type memUserStore struct {
	*memStore[models.User]
}

func newMemUserStore() *memUserStore {
	return &memUserStore{memStore: newMemStore[models.User]()}
}

func (s *memUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.docs {
		if doc["email"] == email {
			return fromDoc[models.User](doc)
		}
	}
	return nil, repository.ErrNotFound
}
