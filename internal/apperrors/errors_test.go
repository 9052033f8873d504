package apperrors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unla-startups/convocatorias-api/internal/apperrors"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  *apperrors.APIError
		kind error
		code int
	}{
		{"validation", apperrors.Validation("faltan campos"), apperrors.ErrValidation, http.StatusBadRequest},
		{"unauthenticated", apperrors.Unauthenticated(""), apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", apperrors.Forbidden(""), apperrors.ErrForbidden, http.StatusForbidden},
		{"not found", apperrors.NotFound("no está"), apperrors.ErrNotFound, http.StatusNotFound},
		{"conflict", apperrors.Conflict("duplicado"), apperrors.ErrConflict, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestInternalNoFiltraDetalle(t *testing.T) {
	causa := errors.New("pq: connection refused")
	err := apperrors.Internal(causa)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "Error interno del servidor", err.Message)
	assert.ErrorIs(t, err, causa)
}
