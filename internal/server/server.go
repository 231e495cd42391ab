// Package server hosts the designer HTTP API. The engine packages are pure
// and every request carries the full model, so the service keeps no state
// and needs no storage.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

// NewRouter builds the Gin engine with all routes registered. CORS is wide
// open; the designer frontend is served from a different origin.
func NewRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(errorHandler())

	h := NewHandler()

	api := router.Group("/api/v1")
	{
		schemaRoutes := api.Group("/schema")
		{
			schemaRoutes.POST("/parse", h.Parse)
			schemaRoutes.POST("/generate", h.Generate)
			schemaRoutes.POST("/format", h.Format)
			schemaRoutes.POST("/suggestions", h.Suggestions)
			schemaRoutes.POST("/validate", h.Validate)
			schemaRoutes.POST("/seed", h.Seed)
		}

		api.POST("/layout/:algorithm", h.Layout)
		api.GET("/dialects", h.Dialects)
	}

	router.GET("/healthz", h.Health)

	return router
}

// New wraps the router in an http.Server so the caller can drive a
// graceful shutdown.
func New(port int) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      NewRouter(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
