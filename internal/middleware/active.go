package middleware

import (
	"context"
	"errors"
	"net/http"

	"siteadmin/internal/models"
	"siteadmin/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminLookup resolves a token subject to a usable account. Blocked and
// deleted admins come back as service.ErrAuth or service.ErrNotFound.
type AdminLookup interface {
	Me(ctx context.Context, adminID uint) (*models.Admin, error)
}

// ActiveAdmin rejects tokens whose admin has since been blocked or removed.
// It must run after AuthRequired.
func ActiveAdmin(admins AdminLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := admins.Me(c.Request.Context(), GetAdminID(c))
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, service.ErrAuth), errors.Is(err, service.ErrNotFound):
			abort(c, http.StatusUnauthorized, "account is not active")
		default:
			_ = c.Error(err)
			abort(c, http.StatusInternalServerError, "Internal server error")
		}
	}
}
