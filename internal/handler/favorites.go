package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikebutak/Locastore/internal/logger"
	"github.com/mikebutak/Locastore/internal/middleware"
	"github.com/mikebutak/Locastore/internal/search"
)

type favoriteRequest struct {
	Business search.Summary `json:"business" binding:"required"`
}

// SaveFavorite appends a business to the logged-in user's favorite
// set. The route is guarded by GinRequireUser, so the session always
// carries a username here.
func (h *Handler) SaveFavorite(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c.Request.Context())

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.favorites.Save(c.Request.Context(), sess.Username, req.Business); err != nil {
		logger.Error("failed to save favorite", map[string]any{
			"username": sess.Username,
			"error":    err.Error(),
		})
		c.String(http.StatusInternalServerError, "failed to save favorite")
		return
	}

	logger.Info("saved favorite", map[string]any{
		"username": sess.Username,
		"place_id": req.Business.PlaceID,
	})
	c.String(http.StatusCreated, "successfully saved favorite")
}

// ListFavorites returns the logged-in user's full favorite set.
func (h *Handler) ListFavorites(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c.Request.Context())

	favs, err := h.favorites.List(c.Request.Context(), sess.Username)
	if err != nil {
		logger.Error("failed to retrieve favorites", map[string]any{
			"username": sess.Username,
			"error":    err.Error(),
		})
		c.String(http.StatusInternalServerError, "failed to retrieve favorites")
		return
	}

	logger.Info("retrieved favorites", map[string]any{
		"username": sess.Username,
		"count":    len(favs),
	})
	c.JSON(http.StatusOK, favs)
}
