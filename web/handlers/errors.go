package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondWithError records the underlying failure with its context fields and
// answers with a user-facing message only; store and engine internals never
// reach the chat widget.
func respondWithError(c *gin.Context, statusCode int, cause error, userMessage string, logger *zap.Logger, fields ...zap.Field) {
	if logger != nil {
		fields = append(fields, zap.Error(cause))
		logger.Error("Request failed", fields...)
	}
	c.JSON(statusCode, gin.H{"error": userMessage})
}

// respondWithClientError answers a validation failure. Nothing is logged: bad
// input from the widget is expected traffic, not an incident.
func respondWithClientError(c *gin.Context, statusCode int, userMessage string) {
	c.JSON(statusCode, gin.H{"error": userMessage})
}
