package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unla-startups/convocatorias-api/internal/auth"
	"github.com/unla-startups/convocatorias-api/internal/models"
	"github.com/unla-startups/convocatorias-api/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RequireAuth resolves the session into an authenticated principal.
// Only the user id lives in the session; the user record is re-fetched
// on every request so role changes apply on the next request.
func RequireAuth(conn *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := auth.SessionUserID(ctx)

		if userID == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Inicia sesión para realizar esta acción"})
			return
		}

		var usuario models.Usuario

		if err := conn.First(&usuario, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Stale session pointing at a deleted user.
				_ = auth.ClearSession(ctx)
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Inicia sesión para realizar esta acción"})
				return
			}
			logger.Error("error al resolver el usuario de la sesión", zap.Error(err), zap.Uint("usuario_id", userID))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor"})
			return
		}

		ctx.Set(types.ContextUserKey, types.Principal{
			ID:     usuario.ID,
			Nombre: usuario.Nombre,
			Email:  usuario.Email,
			Rol:    usuario.Rol,
		})
		ctx.Next()
	}
}
