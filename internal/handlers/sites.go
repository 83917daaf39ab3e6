package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"signalbench/internal/models"
)

// TradeSiteRequest represents the request body for creating a trade site
type TradeSiteRequest struct {
	Name   string `json:"name" binding:"required"`
	APIURI string `json:"api_uri"`
	URI    string `json:"uri"`
}

// SymbolPairRequest represents the request body for creating a symbol pair
type SymbolPairRequest struct {
	BaseSymbol  string `json:"base_symbol" binding:"required"`
	QuoteSymbol string `json:"quote_symbol" binding:"required"`
	SiteID      *uint  `json:"site_id"`
}

// CreateTradeSite creates a new trade site
func (h *Handler) CreateTradeSite(c *gin.Context) {
	var request TradeSiteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site := models.TradeSite{
		Name:   request.Name,
		APIURI: request.APIURI,
		URI:    request.URI,
	}
	if err := h.Store.CreateTradeSite(c.Request.Context(), &site); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, site)
}

// ListTradeSites returns all trade sites
func (h *Handler) ListTradeSites(c *gin.Context) {
	sites, err := h.Store.ListTradeSites(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sites)
}

// CreateSymbolPair creates a new symbol pair
func (h *Handler) CreateSymbolPair(c *gin.Context) {
	var request SymbolPairRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair := models.SymbolPair{
		BaseSymbol:  request.BaseSymbol,
		QuoteSymbol: request.QuoteSymbol,
		SiteID:      request.SiteID,
	}
	if err := h.Store.CreateSymbolPair(c.Request.Context(), &pair); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pair)
}

// ListSymbolPairs returns all symbol pairs
func (h *Handler) ListSymbolPairs(c *gin.Context) {
	pairs, err := h.Store.ListSymbolPairs(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pairs)
}
