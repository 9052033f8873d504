package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/unla-startups/convocatorias-api/internal/types"
)

// GetCurrentUser returns the principal stored by the auth middleware.
func GetCurrentUser(ctx *gin.Context) (types.Principal, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return types.Principal{}, fmt.Errorf("usuario no autenticado")
	}

	principal, ok := user.(types.Principal)

	if !ok {
		return types.Principal{}, fmt.Errorf("tipo de usuario inválido en el contexto")
	}

	return principal, nil
}

// GetCurrentUserID returns the authenticated user's id.
func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	principal, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return principal.ID, nil
}
