package middleware

import (
	"net/http"
	"strings"

	"siteadmin/config"
	"siteadmin/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	ctxAdminID = "admin_id"
	ctxEmail   = "email"
	ctxRole    = "role"
)

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": msg})
}

// AuthRequired validates the bearer JWT and sets admin_id, email and role in context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, http.StatusUnauthorized, "missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, http.StatusUnauthorized, "invalid authorization format")
			return
		}
		claims, err := auth.ParseAccessToken(cfg, parts[1])
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(ctxAdminID, claims.AdminID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// GetAdminID returns the authenticated admin ID (must be used after AuthRequired).
func GetAdminID(c *gin.Context) uint {
	v, ok := c.Get(ctxAdminID)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
