package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rasoighar/backend/internal/service"
)

type ExternalHandler struct {
	externalService *service.ExternalRecipeService
}

func NewExternalHandler(externalService *service.ExternalRecipeService) *ExternalHandler {
	return &ExternalHandler{externalService: externalService}
}

func (h *ExternalHandler) RegisterRoutes(router *gin.RouterGroup) {
	external := router.Group("/external")
	{
		external.GET("/recipes", h.FetchRecipes)
	}
}

func (h *ExternalHandler) FetchRecipes(c *gin.Context) {
	recipes, err := h.externalService.FetchRecipes(c.Request.Context(), c.Query("cuisine"), c.Query("diet"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching recipes from external API"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}
