package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"signalbench/internal/models"
)

// WorkerRequest represents the request body for registering a worker
type WorkerRequest struct {
	IPAddress string `json:"ip_address" binding:"required"`
	UserID    *uint  `json:"user_id"`
	TaskID    *uint  `json:"task_id"`
}

// CheckInRequest is the worker self-report heartbeat body
type CheckInRequest struct {
	IPAddress string `json:"ip_address"`
}

// AssignTaskRequest points a worker at a task
type AssignTaskRequest struct {
	TaskID uint `json:"task_id" binding:"required"`
}

// RegisterWorker registers a new remote worker
func (h *Handler) RegisterWorker(c *gin.Context) {
	var request WorkerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	worker := models.Worker{
		IPAddress: request.IPAddress,
		Owned:     models.Owned{UserID: request.UserID},
		TaskID:    request.TaskID,
	}

	if err := h.Store.RegisterWorker(c.Request.Context(), &worker); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, worker)
}

// WorkerCheckIn handles the worker self-report heartbeat. This path is
// distinct from user-initiated edits: it only moves the check-in fields.
func (h *Handler) WorkerCheckIn(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var request CheckInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.WorkerCheckIn(c.Request.Context(), id, request.IPAddress, time.Now().UTC()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Check-in recorded"})
}

// AssignTask sets the worker's current task (user-initiated edit)
func (h *Handler) AssignTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var request AssignTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.AssignTask(c.Request.Context(), id, request.TaskID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task assigned"})
}

// GetWorker returns a specific worker by ID
func (h *Handler) GetWorker(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	worker, err := h.Store.GetWorker(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

// ListWorkers returns all workers
func (h *Handler) ListWorkers(c *gin.Context) {
	workers, err := h.Store.ListWorkers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}
