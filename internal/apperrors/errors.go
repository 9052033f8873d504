// Package apperrors define la taxonomía de errores del servicio y su
// mapeo a códigos HTTP.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Tipos de error comunes
var (
	ErrValidation      = errors.New("datos inválidos")
	ErrUnauthenticated = errors.New("no autenticado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrConflict        = errors.New("el recurso entra en conflicto con el estado actual")
	ErrInternal        = errors.New("error interno del servidor")
)

// APIError representa un error del servicio con su código HTTP y el
// mensaje que se devuelve al cliente.
type APIError struct {
	Code        int    `json:"-"`
	Message     string `json:"message"`
	OriginalErr error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.OriginalErr)
	}
	return e.Message
}

// Unwrap permite usar errors.Is contra los tipos de error comunes.
func (e *APIError) Unwrap() error {
	return e.OriginalErr
}

func newError(code int, message string, kind error) *APIError {
	return &APIError{Code: code, Message: message, OriginalErr: kind}
}

// Validation crea un error 400 por entrada faltante o malformada.
func Validation(message string) *APIError {
	return newError(http.StatusBadRequest, message, ErrValidation)
}

// Unauthenticated crea un error 401.
func Unauthenticated(message string) *APIError {
	if message == "" {
		message = "No autenticado"
	}
	return newError(http.StatusUnauthorized, message, ErrUnauthenticated)
}

// Forbidden crea un error 403 por rol insuficiente o falta de
// propiedad sobre el recurso.
func Forbidden(message string) *APIError {
	if message == "" {
		message = "No tienes permiso para realizar esta acción"
	}
	return newError(http.StatusForbidden, message, ErrForbidden)
}

// NotFound crea un error 404.
func NotFound(message string) *APIError {
	return newError(http.StatusNotFound, message, ErrNotFound)
}

// Conflict crea un error por violación referencial o de estado
// (email duplicado, convocatoria cerrada, convocatoria con proyectos).
// Se responde 400 como en la tabla de la API.
func Conflict(message string) *APIError {
	return newError(http.StatusBadRequest, message, ErrConflict)
}

// Internal crea un error 500; el detalle queda en el servidor.
func Internal(err error) *APIError {
	return &APIError{
		Code:        http.StatusInternalServerError,
		Message:     "Error interno del servidor",
		OriginalErr: err,
	}
}
