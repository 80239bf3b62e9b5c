// Package handlers adapts inbound HTTP requests to store operations. One
// generic controller covers the shared CRUD contract; users and products
// carry specialized handlers on top of it.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Store abstracts the document store a resource controller operates on.
// The interface lives with its consumer so tests can supply fakes.
type Store[T any] interface {
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context, filter bson.M) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, doc *T) error
	UpdateByID(ctx context.Context, id string, fields bson.M) (*T, error)
	DeleteByID(ctx context.Context, id string) (*T, error)
}

// Resource is the generic CRUD controller, instantiated once per entity.
// singular and plural name the entity in response bodies ("user"/"users").
type Resource[T any] struct {
	store    Store[T]
	singular string
	plural   string
	log      *slog.Logger

	// afterMutate runs after a successful create, update or delete.
	// Used by the product controller for cache invalidation.
	afterMutate func()
}

// NewResource creates a controller over the given store.
func NewResource[T any](store Store[T], singular, plural string, log *slog.Logger) *Resource[T] {
	return &Resource[T]{
		store:    store,
		singular: singular,
		plural:   plural,
		log:      log,
	}
}

// Count handles GET /count. An empty collection is a valid zero count.
func (h *Resource[T]) Count(c *gin.Context) {
	count, err := h.store.Count(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, h.singular+" count not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// List handles GET /.
func (h *Resource[T]) List(c *gin.Context) {
	docs, err := h.store.FindAll(c.Request.Context(), nil)
	if err != nil {
		respondError(c, h.log, err, h.plural+" not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, h.plural: docs})
}

// GetByID handles GET /:id.
func (h *Resource[T]) GetByID(c *gin.Context) {
	doc, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, h.singular+" not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, h.singular: doc})
}

// Create handles POST /.
func (h *Resource[T]) Create(c *gin.Context) {
	var doc T
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.store.Create(c.Request.Context(), &doc); err != nil {
		respondError(c, h.log, err, h.singular+" not found")
		return
	}
	h.mutated()

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  h.singular + " created successfully",
		h.singular: doc,
	})
}

// Update handles PUT /:id. The body is a partial field set; protected fields
// are stripped before the update is applied. The post-update state is
// returned.
func (h *Resource[T]) Update(c *gin.Context) {
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondBadRequest(c, err)
		return
	}

	sanitizeUpdate(fields)
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "no valid fields to update",
		})
		return
	}

	doc, err := h.store.UpdateByID(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondError(c, h.log, err, h.singular+" not found")
		return
	}
	h.mutated()

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  h.singular + " updated successfully",
		h.singular: doc,
	})
}

// Delete handles DELETE /:id and returns the entity as it existed before
// deletion.
func (h *Resource[T]) Delete(c *gin.Context) {
	doc, err := h.store.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, h.singular+" not found")
		return
	}
	h.mutated()

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  h.singular + " deleted successfully",
		h.singular: doc,
	})
}

func (h *Resource[T]) mutated() {
	if h.afterMutate != nil {
		h.afterMutate()
	}
}

// sanitizeUpdate strips fields clients must not set directly.
func sanitizeUpdate(fields bson.M) {
	for _, protected := range []string{"_id", "id", "dateCreated", "dateOrdered"} {
		delete(fields, protected)
	}
}
