package middleware

import (
	"net/http"

	"siteadmin/internal/domain"

	"github.com/gin-gonic/gin"
)

// AdminRequired checks that the authenticated caller carries the admin role.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ctxRole)
		if r, ok := role.(string); !ok || r != domain.RoleAdmin {
			abort(c, http.StatusForbidden, "admin access required")
			return
		}
		c.Next()
	}
}
