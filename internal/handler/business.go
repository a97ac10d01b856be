package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikebutak/Locastore/internal/logger"
)

// Business serves the detail view for one business: the upstream
// detail record enriched with its resolved website URL.
func (h *Handler) Business(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing business id"})
		return
	}

	detail, err := h.gateway.Details(c.Request.Context(), id)
	if err != nil {
		logger.Error("business detail lookup failed", map[string]any{
			"id":    id,
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError,
			"failed to retrieve detailed business data: %s", err.Error())
		return
	}

	detail.ID = id

	if err := h.gateway.ResolveWebsite(c.Request.Context(), detail); err != nil {
		logger.Error("website resolution failed", map[string]any{
			"id":    id,
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError,
			"failed to retrieve detailed business data: %s", err.Error())
		return
	}

	c.JSON(http.StatusOK, detail)
}
