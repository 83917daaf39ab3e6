package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"signalbench/internal/models"
)

// TaskResultRequest is the worker self-report body for one task execution
type TaskResultRequest struct {
	TaskID           uint    `json:"task_id" binding:"required"`
	ExecutionToken   string  `json:"execution_token"`
	Succeeded        bool    `json:"succeeded"`
	AverageDiff      float64 `json:"average_diff"`
	Output           string  `json:"output"`
	PercentCorrect   int     `json:"percent_correct"`
	PredictionSize   int     `json:"prediction_size"`
	ProfitLossFloat  float64 `json:"profit_loss_float"`
	ProfitLossInt    int64   `json:"profit_loss_int"`
	RunTime          float64 `json:"run_time"`
	Score            int     `json:"score"`
	ClassifierTestID *uint   `json:"classifier_test_id"`
	PredictionTestID *uint   `json:"prediction_test_id"`
}

// SubmitTaskResult records one execution's result. Part of the worker
// self-report surface; results are append-only.
func (h *Handler) SubmitTaskResult(c *gin.Context) {
	workerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var request TaskResultRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := models.TaskResult{
		ExecutionToken:  request.ExecutionToken,
		AverageDiff:     request.AverageDiff,
		Output:          request.Output,
		PercentCorrect:  request.PercentCorrect,
		PredictionSize:  request.PredictionSize,
		ProfitLossFloat: request.ProfitLossFloat,
		ProfitLossInt:   request.ProfitLossInt,
		RunTime:         request.RunTime,
		Score:           request.Score,
		WorkerID:        workerID,
		TaskID:          request.TaskID,
		TestLink: models.TestLink{
			ClassifierTestID: request.ClassifierTestID,
			PredictionTestID: request.PredictionTestID,
		},
	}

	if err := h.Store.SubmitTaskResult(c.Request.Context(), &result, request.Succeeded, time.Now().UTC()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetTaskResult returns a single recorded result by ID
func (h *Handler) GetTaskResult(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.Store.GetTaskResult(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListTaskResults returns all results recorded for a task
func (h *Handler) ListTaskResults(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	results, err := h.Store.ListTaskResults(c.Request.Context(), taskID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
