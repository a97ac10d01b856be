package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikebutak/Locastore/internal/logger"
	"github.com/mikebutak/Locastore/internal/middleware"
	"github.com/mikebutak/Locastore/internal/search"
)

// productSearchRadius matches the upstream API's radius unit and is
// fixed for all product searches.
const productSearchRadius = 50

type searchRequest struct {
	Text string `json:"text" binding:"required"`
}

// Location searches businesses around a free-text location and
// remembers the location on the caller's session for later product
// searches. No blacklist filtering here.
func (h *Handler) Location(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if sess, ok := middleware.SessionFromContext(c.Request.Context()); ok {
		sess.Location = req.Text
		if err := h.store.Update(c.Request.Context(), *sess); err != nil {
			// Search still works this request; only the follow-up
			// product search loses its location.
			logger.Warn("failed to persist session location", map[string]any{
				"error": err.Error(),
			})
		}
	}

	result, err := h.gateway.Search(c.Request.Context(), req.Text, "", 0)
	if err != nil {
		logger.Error("location search failed", map[string]any{
			"location": req.Text,
			"error":    err.Error(),
		})
		c.String(http.StatusInternalServerError,
			"failed to retrieve business data: %s", err.Error())
		return
	}

	if result.Empty() {
		logger.Info("no businesses found at location", map[string]any{
			"location": req.Text,
		})
		c.JSON(http.StatusNoContent, []search.Summary{})
		return
	}

	c.JSON(http.StatusOK, search.Summarize(result.Business, nil))
}

// Product searches businesses matching a product or category term
// around the session's stored location, with blacklist filtering.
func (h *Handler) Product(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess, ok := middleware.SessionFromContext(c.Request.Context())
	if !ok || sess.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "no search location set; search a location first",
		})
		return
	}

	result, err := h.gateway.Search(
		c.Request.Context(),
		sess.Location,
		req.Text,
		productSearchRadius,
	)
	if err != nil {
		logger.Error("product search failed", map[string]any{
			"product": req.Text,
			"error":   err.Error(),
		})
		c.String(http.StatusInternalServerError,
			"failed to retrieve business data: %s", err.Error())
		return
	}

	// Upstream error payloads and zero matches both read as "nothing
	// to show", but they are logged apart.
	if len(result.Errors) > 0 {
		logger.Warn("search API returned an error", map[string]any{
			"product": req.Text,
			"errors":  result.Errors,
		})
		c.JSON(http.StatusNoContent, []search.Summary{})
		return
	}
	if result.Total == 0 {
		logger.Info("no results found for product", map[string]any{
			"product": req.Text,
		})
		c.JSON(http.StatusNoContent, []search.Summary{})
		return
	}

	c.JSON(http.StatusOK, search.Summarize(result.Business, h.blacklist.Has))
}
