package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unla-startups/convocatorias-api/internal/apperrors"
	"go.uber.org/zap"
)

// respondError maps a service error to its JSON response. Internal
// errors are logged server-side and never leak detail to the client.
func respondError(ctx *gin.Context, logger *zap.Logger, err error) {
	var apiErr *apperrors.APIError

	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusInternalServerError {
			logger.Error("error interno", zap.Error(apiErr))
		}
		ctx.JSON(apiErr.Code, gin.H{"message": apiErr.Message})
		return
	}

	logger.Error("error no clasificado", zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor"})
}

// parseIDParam reads a numeric path parameter. On a malformed id it
// writes the 400 response and returns ok=false.
func parseIDParam(ctx *gin.Context, param, recurso string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)

	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "ID de " + recurso + " inválido"})
		return 0, false
	}

	return uint(id), true
}
