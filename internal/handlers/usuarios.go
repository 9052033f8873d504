package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unla-startups/convocatorias-api/internal/services"
	"github.com/unla-startups/convocatorias-api/internal/types"
	"github.com/unla-startups/convocatorias-api/internal/utils"
	"go.uber.org/zap"
)

type UsuarioHandler struct {
	usuarios *services.UsuarioService
	logger   *zap.Logger
}

func NewUsuarioHandler(usuarios *services.UsuarioService, logger *zap.Logger) *UsuarioHandler {
	return &UsuarioHandler{usuarios: usuarios, logger: logger}
}

func (h *UsuarioHandler) List(ctx *gin.Context) {
	usuarios, err := h.usuarios.List()

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	resp := make([]types.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		resp = append(resp, types.NewUsuarioResponse(&usuarios[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"users": resp})
}

type updateRoleRequest struct {
	UserID  uint   `json:"userId"`
	NewRole string `json:"newRole"`
}

func (h *UsuarioHandler) UpdateRole(ctx *gin.Context) {
	principal, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Inicia sesión para realizar esta acción"})
		return
	}

	var req updateRoleRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Se requiere userId y newRole"})
		return
	}

	usuario, err := h.usuarios.UpdateRole(principal.ID, req.UserID, req.NewRole)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Rol de usuario actualizado exitosamente a " + usuario.Rol,
		"user":    types.NewUsuarioResponse(usuario),
	})
}
