package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikebutak/Locastore/internal/account"
	"github.com/mikebutak/Locastore/internal/logger"
	"github.com/mikebutak/Locastore/internal/middleware"
	"github.com/mikebutak/Locastore/internal/session"
)

const (
	msgWrongPassword = "Password incorrect, please try again. Check spelling and remember that username and password are case-sensitive."
	msgUnknownUser   = "No such user found, please try again. Check spelling and remember that username and password are case-sensitive."
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup creates an account. Unlike its predecessor it reports
// success and failure with distinct status codes.
func (h *Handler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, err := h.accounts.Register(
		c.Request.Context(),
		req.Username,
		req.Password,
	)

	if err != nil {
		if errors.Is(err, account.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("account created", map[string]any{
		"username": req.Username,
		"user_id":  userID,
	})

	c.JSON(http.StatusCreated, gin.H{"status": "account created"})
}

// Login verifies credentials and, on success, marks the caller's
// session as belonging to the username.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res := h.accounts.Verify(c.Request.Context(), req.Username, req.Password)

	switch res.Status {
	case account.Verified:
		sess, ok := middleware.SessionFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
			return
		}

		sess.Username = req.Username
		if err := h.store.Update(c.Request.Context(), *sess); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
			return
		}

		logger.Info("login succeeded", map[string]any{
			"username": req.Username,
		})
		c.JSON(http.StatusOK, gin.H{
			"status":   "logged in",
			"username": req.Username,
		})

	case account.WrongPassword:
		c.String(http.StatusBadRequest, msgWrongPassword)

	case account.UnknownUser:
		c.String(http.StatusBadRequest, msgUnknownUser)

	default:
		// Escape hatch for service-specific error strings.
		c.String(http.StatusBadRequest, res.Message)
	}
}

// Logout destroys the session and always redirects to the login
// view, whether or not a session existed.
func (h *Handler) Logout(c *gin.Context) {
	if sess, ok := middleware.SessionFromContext(c.Request.Context()); ok {
		_ = h.store.Delete(c.Request.Context(), sess.ID)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusFound, "/login")
}
