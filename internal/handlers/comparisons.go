package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"signalbench/internal/models"
)

// PerformanceComparisonRequest represents one evaluation window's comparison
type PerformanceComparisonRequest struct {
	ActualMovement           float64    `json:"actual_movement"`
	Delta                    float64    `json:"delta"`
	DirectionallySame        bool       `json:"directionally_same"`
	NeuralNetworkRec         float64    `json:"neural_network_rec"`
	PercentBuy               float64    `json:"percent_buy"`
	PercentHold              float64    `json:"percent_hold"`
	PercentSell              float64    `json:"percent_sell"`
	PriceTimeRangeStart      *time.Time `json:"price_time_range_start"`
	PriceTimeRangeEnd        *time.Time `json:"price_time_range_end"`
	TrTimeRangeStart         *time.Time `json:"tr_time_range_start"`
	TrTimeRangeEnd           *time.Time `json:"tr_time_range_end"`
	RecommendationCount      int        `json:"recommendation_count"`
	WeightedAverageNeuralRec float64    `json:"weighted_average_neural_rec"`
	RecommendationID         *uint      `json:"recommendation_id"`
	SymbolPairID             *uint      `json:"symbol_pair_id"`
	UserID                   *uint      `json:"user_id"`
	CreatedBy                *uint      `json:"created_by"`
}

// CreatePerformanceComparison appends a comparison row
func (h *Handler) CreatePerformanceComparison(c *gin.Context) {
	var request PerformanceComparisonRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comparison := models.PerformanceComparison{
		ActualMovement:           request.ActualMovement,
		Delta:                    request.Delta,
		DirectionallySame:        request.DirectionallySame,
		NeuralNetworkRec:         request.NeuralNetworkRec,
		PercentBuy:               request.PercentBuy,
		PercentHold:              request.PercentHold,
		PercentSell:              request.PercentSell,
		PriceTimeRangeStart:      request.PriceTimeRangeStart,
		PriceTimeRangeEnd:        request.PriceTimeRangeEnd,
		TrTimeRangeStart:         request.TrTimeRangeStart,
		TrTimeRangeEnd:           request.TrTimeRangeEnd,
		RecommendationCount:      request.RecommendationCount,
		WeightedAverageNeuralRec: request.WeightedAverageNeuralRec,
		RecommendationID:         request.RecommendationID,
		SymbolPairID:             request.SymbolPairID,
		Owned:                    models.Owned{UserID: request.UserID},
		AuditTrail:               models.AuditTrail{CreatedUserID: request.CreatedBy},
	}

	if err := h.Store.CreatePerformanceComparison(c.Request.Context(), &comparison); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comparison)
}

// GetPerformanceComparison returns a specific comparison by ID
func (h *Handler) GetPerformanceComparison(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	comparison, err := h.Store.GetPerformanceComparison(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// ListPerformanceComparisons returns comparisons, optionally filtered by
// symbol pair
func (h *Handler) ListPerformanceComparisons(c *gin.Context) {
	var symbolPairID *uint
	if raw := c.Query("symbol_pair_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid symbol_pair_id"})
			return
		}
		v := uint(id)
		symbolPairID = &v
	}

	comparisons, err := h.Store.ListPerformanceComparisons(c.Request.Context(), symbolPairID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparisons)
}

// DeletePerformanceComparison soft-deletes a comparison
func (h *Handler) DeletePerformanceComparison(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var request deleteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.SoftDeletePerformanceComparison(c.Request.Context(), id, request.DeletedBy, time.Now().UTC()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comparison deleted"})
}
