package api

import (
	"net/http"
	"strings"

	"github.com/flyhigh-app/flyhigh/internal/domain"
	"github.com/flyhigh-app/flyhigh/internal/service/auth"
	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// Authenticate extracts the bearer token, verifies it and stores the caller
// identity in the request context.
func Authenticate(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authorization token required"})
			return
		}

		identity, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid or expired token"})
			return
		}

		c.Set(ctxUserID, identity.UserID)
		c.Set(ctxRole, string(identity.Role))
		c.Next()
	}
}

// AdminOnly requires the admin role, after Authenticate has run.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identityFrom(c).Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "admin access required"})
			return
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) domain.Identity {
	return domain.Identity{
		UserID: c.GetString(ctxUserID),
		Role:   domain.Role(c.GetString(ctxRole)),
	}
}
