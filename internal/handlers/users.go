package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"signalbench/internal/models"
)

// UserRequest represents the request body for creating a user
type UserRequest struct {
	Username  string `json:"username" binding:"required"`
	SecretKey string `json:"secret_key"`
	CreatedBy *uint  `json:"created_by"`
}

// CreateUser creates a new user with an encrypted secret key
func (h *Handler) CreateUser(c *gin.Context) {
	var request UserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Username: request.Username,
		AuditTrail: models.AuditTrail{
			CreatedUserID: request.CreatedBy,
		},
	}

	if err := h.Store.CreateUser(c.Request.Context(), &user, request.SecretKey); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser returns a specific user by ID
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.Store.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers returns all users, or a single user when the username query
// parameter is present. Usernames are unique so the lookup is exact.
func (h *Handler) ListUsers(c *gin.Context) {
	if username := c.Query("username"); username != "" {
		user, err := h.Store.GetUserByUsername(c.Request.Context(), username)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, []*models.User{user})
		return
	}

	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserSecret decrypts and returns the user's secret key
func (h *Handler) GetUserSecret(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	secret, err := h.Store.UserSecret(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"secret_key": secret})
}

// DeleteUser soft-deletes a user, attributing the deletion
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var request deleteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.SoftDeleteUser(c.Request.Context(), id, request.DeletedBy, time.Now().UTC()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
