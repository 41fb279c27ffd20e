package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rasoighar/backend/internal/api"
	"github.com/rasoighar/backend/internal/middleware"
)

// Setup configures the application routes
func Setup(
	inventoryHandler *api.InventoryHandler,
	recipeHandler *api.RecipeHandler,
	iotHandler *api.IoTHandler,
	externalHandler *api.ExternalHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Smart Kitchen API is running!",
			"endpoints": gin.H{
				"inventory": "/api/v1/inventory",
				"recipes":   "/api/v1/recipes",
				"iot":       "/api/v1/iot",
				"external":  "/api/v1/external",
			},
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	inventoryHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	iotHandler.RegisterRoutes(v1)
	externalHandler.RegisterRoutes(v1)

	return router
}
