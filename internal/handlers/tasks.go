package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"signalbench/internal/models"
)

// TaskDispatchQueue is the RabbitMQ queue workers consume task runs from.
const TaskDispatchQueue = "task_dispatch"

// TaskRequest represents the request body for creating a task
type TaskRequest struct {
	UserID           *uint `json:"user_id"`
	CreatedBy        *uint `json:"created_by"`
	ClassifierTestID *uint `json:"classifier_test_id"`
	PredictionTestID *uint `json:"prediction_test_id"`
}

// TaskDispatchMessage is published to the dispatch queue. The execution
// token travels with the run so retried result reports stay idempotent.
type TaskDispatchMessage struct {
	TaskID         uint   `json:"task_id"`
	ExecutionToken string `json:"execution_token"`
}

// CreateTask creates a new task
func (h *Handler) CreateTask(c *gin.Context) {
	var request TaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := models.Task{
		Owned:      models.Owned{UserID: request.UserID},
		AuditTrail: models.AuditTrail{CreatedUserID: request.CreatedBy},
		TestLink: models.TestLink{
			ClassifierTestID: request.ClassifierTestID,
			PredictionTestID: request.PredictionTestID,
		},
	}

	if err := h.Store.CreateTask(c.Request.Context(), &task); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GetTask returns a specific task by ID
func (h *Handler) GetTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.Store.GetTask(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// ListTasks returns all tasks
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.Store.ListTasks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// DispatchTask enqueues a task run for the worker pool
func (h *Handler) DispatchTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if h.Publisher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Task dispatch not configured"})
		return
	}

	if _, err := h.Store.GetTask(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	msg := TaskDispatchMessage{
		TaskID:         id,
		ExecutionToken: uuid.NewString(),
	}
	if err := h.Publisher.Publish(TaskDispatchQueue, msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, msg)
}

// DeleteTask soft-deletes a task, attributing the deletion
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var request deleteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.SoftDeleteTask(c.Request.Context(), id, request.DeletedBy, time.Now().UTC()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
