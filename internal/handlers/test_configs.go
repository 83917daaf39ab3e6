package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"signalbench/internal/models"
)

// BaseTestConfigRequest represents the request body for the shared test
// parameters
type BaseTestConfigRequest struct {
	TestType          string `json:"test_type" binding:"required"`
	DataSetInputs     int    `json:"data_set_inputs"`
	Granularity       int    `json:"granularity"`
	MinutesBack       int    `json:"minutes_back"`
	TrainingSetLength int    `json:"training_set_length"`
	SiteID            *uint  `json:"site_id"`
	SymbolPairID      *uint  `json:"symbol_pair_id"`
	CreatedBy         *uint  `json:"created_by"`
}

// PredictionTestConfigRequest represents the request body for the
// neural-network hyperparameters on top of a base configuration
type PredictionTestConfigRequest struct {
	BaseID         uint    `json:"base_id" binding:"required"`
	PredictionType string  `json:"prediction_type"`
	Bias           bool    `json:"bias"`
	Recurrent      bool    `json:"recurrent"`
	WeightDecay    float64 `json:"weight_decay"`
	HiddenNeurons  int     `json:"hidden_neurons"`
	Epochs         int     `json:"epochs"`
	Momentum       float64 `json:"momentum"`
	LearningRate   float64 `json:"learning_rate"`
}

// CreateBaseTestConfig creates the shared test parameter record
func (h *Handler) CreateBaseTestConfig(c *gin.Context) {
	var request BaseTestConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := models.ParseTestKind(request.TestType)
	if err != nil {
		writeError(c, err)
		return
	}

	cfg := models.TestConfigurationBase{
		TestKind:          kind,
		DataSetInputs:     request.DataSetInputs,
		Granularity:       request.Granularity,
		MinutesBack:       request.MinutesBack,
		TrainingSetLength: request.TrainingSetLength,
		SiteID:            request.SiteID,
		SymbolPairID:      request.SymbolPairID,
		AuditTrail:        models.AuditTrail{CreatedUserID: request.CreatedBy},
	}

	if err := h.Store.CreateBaseTestConfiguration(c.Request.Context(), &cfg); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// CreatePredictionTestConfig creates a prediction test configuration
func (h *Handler) CreatePredictionTestConfig(c *gin.Context) {
	var request PredictionTestConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := models.PredictionTestConfiguration{
		PredictionKind: models.PredictionKind(request.PredictionType),
		Bias:           request.Bias,
		Recurrent:      request.Recurrent,
		WeightDecay:    request.WeightDecay,
		HiddenNeurons:  request.HiddenNeurons,
		Epochs:         request.Epochs,
		Momentum:       request.Momentum,
		LearningRate:   request.LearningRate,
		BaseID:         request.BaseID,
	}

	if err := h.Store.CreatePredictionTestConfiguration(c.Request.Context(), &cfg); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// ClassifierTestConfigRequest represents the request body for a classifier
// test configuration
type ClassifierTestConfigRequest struct {
	BaseID uint `json:"base_id" binding:"required"`
}

// CreateClassifierTestConfig creates a classifier test configuration
func (h *Handler) CreateClassifierTestConfig(c *gin.Context) {
	var request ClassifierTestConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := models.ClassifierTestConfiguration{BaseID: request.BaseID}
	if err := h.Store.CreateClassifierTestConfiguration(c.Request.Context(), &cfg); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// ListClassifierTestConfigs returns all classifier test configurations
func (h *Handler) ListClassifierTestConfigs(c *gin.Context) {
	configs, err := h.Store.ListClassifierTestConfigurations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

// GetBaseTestConfig returns a base test configuration by ID
func (h *Handler) GetBaseTestConfig(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	cfg, err := h.Store.GetBaseTestConfiguration(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GetPredictionTestConfig returns a prediction test configuration with its
// base parameters preloaded
func (h *Handler) GetPredictionTestConfig(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	cfg, err := h.Store.GetPredictionTestConfiguration(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// ListBaseTestConfigs returns all base test configurations
func (h *Handler) ListBaseTestConfigs(c *gin.Context) {
	configs, err := h.Store.ListBaseTestConfigurations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

// ListPredictionTestConfigs returns all prediction test configurations
func (h *Handler) ListPredictionTestConfigs(c *gin.Context) {
	configs, err := h.Store.ListPredictionTestConfigurations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

// DeleteBaseTestConfig soft-deletes a base test configuration
func (h *Handler) DeleteBaseTestConfig(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var request deleteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.SoftDeleteBaseTestConfiguration(c.Request.Context(), id, request.DeletedBy, time.Now().UTC()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test configuration deleted"})
}
