package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rasoighar/backend/internal/kitchen"
	"github.com/rasoighar/backend/internal/model"
	"github.com/rasoighar/backend/internal/service"
)

// respondError maps service errors onto HTTP statuses: validation
// failures 400, unknown identifiers 404, computation preconditions 422,
// everything else 500.
func respondError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, kitchen.ErrNoIngredients), errors.Is(err, kitchen.ErrZeroQuantity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidDeviceCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
