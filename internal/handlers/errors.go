package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/ledger_reconciler/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError writes the error body for err. Client errors carry the service
// message; infrastructure failures are logged and answered with fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.HTTPStatus(err)
	if apperrors.IsClientError(err) {
		logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	logger.Error(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": fallback})
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": must be a positive integer"})
		return 0, false
	}
	return id, true
}
