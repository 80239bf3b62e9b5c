package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sfailla/ecommerce-shop/internal/cache"
	"github.com/Sfailla/ecommerce-shop/internal/models"
)

const (
	productCacheTTL     = 5 * time.Minute
	productListCacheTTL = 2 * time.Minute
)

// ProductHandler adds catalog-specific reads (category filter, featured
// products) and an in-process read cache on top of the generic controller.
type ProductHandler struct {
	*Resource[models.Product]
	store Store[models.Product]
	cache *cache.Cache
}

// NewProductHandler creates the product controller.
func NewProductHandler(store Store[models.Product], c *cache.Cache, log *slog.Logger) *ProductHandler {
	h := &ProductHandler{
		Resource: NewResource[models.Product](store, "product", "products", log),
		store:    store,
		cache:    c,
	}
	h.afterMutate = h.invalidate
	return h
}

// List handles GET /, optionally filtered by ?categories=id1,id2.
func (h *ProductHandler) List(c *gin.Context) {
	categories := c.Query("categories")
	cacheKey := "products:list:" + categories

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	filter := bson.M{}
	if categories != "" {
		ids := make([]primitive.ObjectID, 0)
		for _, raw := range strings.Split(categories, ",") {
			id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		filter["category"] = bson.M{"$in": ids}
	}

	products, err := h.store.FindAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, err, "products not found")
		return
	}

	response := gin.H{"success": true, "products": products}
	h.cache.Set(cacheKey, response, productListCacheTTL)
	c.JSON(http.StatusOK, response)
}

// GetByID handles GET /:id with a read-through cache.
func (h *ProductHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	cacheKey := fmt.Sprintf("product:%s", id)

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "product not found")
		return
	}

	response := gin.H{"success": true, "product": product}
	h.cache.Set(cacheKey, response, productCacheTTL)
	c.JSON(http.StatusOK, response)
}

// Featured handles GET /featured/:count, returning up to count featured
// products.
func (h *ProductHandler) Featured(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil || count < 0 {
		count = 0
	}

	products, err := h.store.FindAll(c.Request.Context(), bson.M{"isFeatured": true})
	if err != nil {
		respondError(c, h.log, err, "products not found")
		return
	}

	if count > 0 && len(products) > count {
		products = products[:count]
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// invalidate drops all cached product reads after a mutation.
func (h *ProductHandler) invalidate() {
	h.cache.DeleteByPrefix("product")
}
