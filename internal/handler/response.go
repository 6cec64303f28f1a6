package handler

import (
	"errors"
	"net/http"
	"strconv"

	"siteadmin/internal/service"
	"siteadmin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the envelope every admin API route answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func respond(c *gin.Context, status int, msg string, data any) {
	c.JSON(status, Response{Success: true, Message: msg, Data: data})
}

func respondList(c *gin.Context, msg string, list any, n int) {
	c.JSON(http.StatusOK, Response{Success: true, Message: msg, Data: list, Count: &n})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Success: false, Message: msg})
}

// respondError maps service error kinds to statuses. Anything unclassified is
// logged with the request logger and reported as a generic 500.
func respondError(c *gin.Context, log *zap.Logger, op string, err error) {
	msg := service.Message(err)
	switch {
	case errors.Is(err, service.ErrValidation):
		fail(c, http.StatusBadRequest, msg)
	case errors.Is(err, service.ErrAuth):
		fail(c, http.StatusUnauthorized, msg)
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, msg)
	case errors.Is(err, service.ErrConflict):
		fail(c, http.StatusConflict, msg)
	default:
		logger.FromContext(c.Request.Context(), log).Error(op+" failed", zap.Error(err))
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

// bindJSON decodes the body into dst and answers 400 on malformed input.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// parseID reads the :id path parameter. Ids are positive integers.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
