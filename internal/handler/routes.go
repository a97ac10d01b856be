package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikebutak/Locastore/internal/logger"
)

func (h *Handler) RegisterRoutes(r *gin.Engine, requireUser gin.HandlerFunc) {
	r.POST("/location", h.Location)
	r.POST("/product", h.Product)
	r.GET("/business", h.Business)

	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	r.POST("/favorite", requireUser, h.SaveFavorite)
	r.GET("/favorite", requireUser, h.ListFavorites)

	// Anything else goes back to the application root; the client
	// owns its own routing, so no 404s.
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	for _, route := range r.Routes() {
		logger.Info("route registered", map[string]any{
			"method": route.Method,
			"path":   route.Path,
		})
	}
}
