package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"signalbench/internal/models"
	"signalbench/internal/store"
	"signalbench/pkg/config"
)

// Handler bundles the dependencies the HTTP layer needs. Publisher may be
// nil when RabbitMQ is not configured; task dispatch then returns 503.
type Handler struct {
	Store     *store.Store
	Publisher *config.Publisher
}

func New(st *store.Store, pub *config.Publisher) *Handler {
	return &Handler{Store: st, Publisher: pub}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return 0, false
	}
	return uint(id), true
}

// writeError maps the write-time error taxonomy onto HTTP statuses. Nothing
// is retried here; the caller decides retry vs. surfacing.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, models.ErrInvalidKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUniqueViolation), errors.Is(err, models.ErrStateConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrReferentialIntegrity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrCredentialUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// deleteRequest attributes a soft delete to the acting user.
type deleteRequest struct {
	DeletedBy uint `json:"deleted_by" binding:"required"`
}
