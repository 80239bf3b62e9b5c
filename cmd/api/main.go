package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sfailla/ecommerce-shop/internal/config"
	"github.com/Sfailla/ecommerce-shop/internal/database"
	"github.com/Sfailla/ecommerce-shop/internal/routes"
)

func main() {
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if cfg.JWTSecret == "" {
		log.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	db := client.Database(cfg.MongoDB)

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, db, cfg, log)

	log.Info("server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
