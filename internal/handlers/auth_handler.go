package handlers

import (
	"net/http"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/middleware"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	sessionTTL  int
}

func NewAuthHandler(authService services.AuthService, sessionTTLSeconds int) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTLSeconds}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, h.sessionTTL, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		h.authService.Logout(token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me returns the resolved identity of the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"user_id":     identity.UserID,
		"role":        identity.Role,
		"customer_id": identity.CustomerID,
	})
}
