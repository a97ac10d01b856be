package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinSession adapts the net/http SessionMiddleware to Gin so the
// session rides on the standard request context.
func GinSession(m *SessionMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		handler := m.Attach(next)
		handler.ServeHTTP(c.Writer, c.Request)

		// If the middleware already handled the response, stop Gin chain
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}

// GinRequireUser rejects requests whose session has no logged-in
// username. Used by the favorites routes.
func GinRequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromContext(c.Request.Context())
		if !ok || sess.Username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "login required",
			})
			return
		}
		c.Next()
	}
}
