package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sfailla/ecommerce-shop/internal/auth"
	"github.com/Sfailla/ecommerce-shop/internal/cache"
	"github.com/Sfailla/ecommerce-shop/internal/config"
	"github.com/Sfailla/ecommerce-shop/internal/handlers"
	"github.com/Sfailla/ecommerce-shop/internal/models"
	"github.com/Sfailla/ecommerce-shop/internal/repository"
)

// RegisterRoutes wires every entity controller under /api/v1.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, log *slog.Logger) {
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	users := handlers.NewUserHandler(
		repository.NewUserMongo(db.Collection("users")),
		issuer,
		log,
	)
	products := handlers.NewProductHandler(
		repository.NewMongo(db.Collection("products"), func(p *models.Product) {
			p.ID = primitive.NewObjectID()
			p.DateCreated = time.Now()
		}),
		cache.New(5*time.Minute),
		log,
	)
	categories := handlers.NewResource(
		repository.NewMongo(db.Collection("categories"), func(c *models.Category) {
			c.ID = primitive.NewObjectID()
		}),
		"category", "categories", log,
	)
	orders := handlers.NewResource(
		repository.NewMongo(db.Collection("orders"), func(o *models.Order) {
			o.ID = primitive.NewObjectID()
			o.DateOrdered = time.Now()
			if o.Status == "" {
				o.Status = "pending"
			}
		}),
		"order", "orders", log,
	)

	v1 := router.Group("/api/v1")

	u := v1.Group("/users")
	{
		u.GET("/count", users.Count)
		u.GET("", users.List)
		u.GET("/:id", users.GetByID)
		u.POST("", users.Create)
		u.PUT("/:id", users.Update)
		u.DELETE("/:id", users.Delete)
		u.POST("/login", users.Login)
	}

	p := v1.Group("/products")
	{
		p.GET("/count", products.Count)
		p.GET("/featured/:count", products.Featured)
		p.GET("", products.List)
		p.GET("/:id", products.GetByID)
		p.POST("", products.Create)
		p.PUT("/:id", products.Update)
		p.DELETE("/:id", products.Delete)
	}

	registerCrud(v1.Group("/categories"), categories)
	registerCrud(v1.Group("/orders"), orders)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
		})
	})
}

// registerCrud mounts the generic controller's full operation set.
func registerCrud[T any](g *gin.RouterGroup, h *handlers.Resource[T]) {
	g.GET("/count", h.Count)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
