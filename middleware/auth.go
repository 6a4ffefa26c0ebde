package middleware

import (
	"net/http"
	"strings"

	"neighborhood-stories/services"

	"github.com/gin-gonic/gin"
)

// ContextKeyAdminPassword is where the verified raw credential is stashed so
// services can re-check it on mutating calls.
const ContextKeyAdminPassword = "admin_password"

// AdminAuth gates moderation routes behind the shared admin secret sent as a
// bearer token. The response is the same for a missing header, a malformed
// header and a wrong password.
func AdminAuth(verifier services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		password := strings.TrimPrefix(authHeader, "Bearer ")
		if password == authHeader {
			unauthorized(c)
			return
		}

		if !verifier.Verify(password) {
			unauthorized(c)
			return
		}

		c.Set(ContextKeyAdminPassword, password)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	c.Abort()
}
