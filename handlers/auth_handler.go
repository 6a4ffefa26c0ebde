package handlers

import (
	"net/http"

	"neighborhood-stories/models"
	"neighborhood-stories/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler answers the dashboard's password check. It gates UI access
// only; no token is minted and every later admin call re-sends the password.
type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) VerifyPassword(c *gin.Context) {
	var req models.VerifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.VerifyPasswordResponse{
			IsAuthenticated: false,
			Error:           err.Error(),
		})
		return
	}

	if !h.authService.Verify(req.Password) {
		c.JSON(http.StatusUnauthorized, models.VerifyPasswordResponse{
			IsAuthenticated: false,
			Error:           "Invalid password",
		})
		return
	}

	c.JSON(http.StatusOK, models.VerifyPasswordResponse{IsAuthenticated: true})
}
