package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unla-startups/convocatorias-api/internal/authz"
	"github.com/unla-startups/convocatorias-api/internal/utils"
)

// RequireStaff gates an endpoint to STAFF and ADMIN users. It must run
// after RequireAuth.
func RequireStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, err := utils.GetCurrentUser(ctx)

		if err != nil || !authz.IsStaffOrAdmin(principal.Rol) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No tienes permiso para realizar esta acción"})
			return
		}

		ctx.Next()
	}
}

// RequireAdmin gates an endpoint to ADMIN users. It must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, err := utils.GetCurrentUser(ctx)

		if err != nil || !authz.IsAdmin(principal.Rol) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No tienes permiso para realizar esta acción"})
			return
		}

		ctx.Next()
	}
}
