package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"signalbench/internal/models"
)

// TradeRecommendationRequest represents the request body for recording a
// recommendation emitted by a trained network
type TradeRecommendationRequest struct {
	Value        float64    `json:"value"`
	ValidFrom    *time.Time `json:"valid_from"`
	ValidUntil   *time.Time `json:"valid_until"`
	SymbolPairID *uint      `json:"symbol_pair_id"`
}

// CreateTradeRecommendation records a recommendation. Recommendations are
// append-only; the comparison recorder picks them up once their validity
// window closes.
func (h *Handler) CreateTradeRecommendation(c *gin.Context) {
	var request TradeRecommendationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := models.TradeRecommendation{
		Value:        request.Value,
		ValidFrom:    request.ValidFrom,
		ValidUntil:   request.ValidUntil,
		SymbolPairID: request.SymbolPairID,
	}
	if err := h.Store.CreateTradeRecommendation(c.Request.Context(), &rec); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// ListTradeRecommendations returns recommendations, optionally filtered by
// symbol pair via the symbol_pair_id query parameter
func (h *Handler) ListTradeRecommendations(c *gin.Context) {
	var pairID *uint
	if raw := c.Query("symbol_pair_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symbol_pair_id"})
			return
		}
		v := uint(id)
		pairID = &v
	}

	recs, err := h.Store.ListTradeRecommendations(c.Request.Context(), pairID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}
