package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"signalbench/internal/models"
)

// AuthorizationRequest stores an OAuth authorization token
type AuthorizationRequest struct {
	Token string `json:"token" binding:"required"`
}

// AccessGrantRequest stores an OAuth access token with its grants bitmask
type AccessGrantRequest struct {
	UserID      *uint      `json:"user_id"`
	Token       string     `json:"token" binding:"required"`
	Grants      int64      `json:"grants"`
	DateExpires *time.Time `json:"date_expires"`
}

// CreateAuthorization stores an authorization token
func (h *Handler) CreateAuthorization(c *gin.Context) {
	var request AuthorizationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	auth := models.OAuthAuthorization{Token: request.Token}
	if err := h.Store.CreateAuthorization(c.Request.Context(), &auth); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, auth)
}

// CreateAccessGrant stores an access token for a user
func (h *Handler) CreateAccessGrant(c *gin.Context) {
	var request AccessGrantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grant := models.OAuthAccessGrant{
		Owned:       models.Owned{UserID: request.UserID},
		Token:       request.Token,
		Grants:      request.Grants,
		DateExpires: request.DateExpires,
	}
	if err := h.Store.CreateAccessGrant(c.Request.Context(), &grant); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, grant)
}

// ListAccessGrants returns all access grants owned by a user
func (h *Handler) ListAccessGrants(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	grants, err := h.Store.ListAccessGrants(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, grants)
}
