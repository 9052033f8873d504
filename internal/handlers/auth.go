package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unla-startups/convocatorias-api/internal/auth"
	"github.com/unla-startups/convocatorias-api/internal/services"
	"github.com/unla-startups/convocatorias-api/internal/types"
	"github.com/unla-startups/convocatorias-api/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db           *gorm.DB
	usuarios     *services.UsuarioService
	logger       *zap.Logger
	secureCookie bool
}

func NewAuthHandler(db *gorm.DB, usuarios *services.UsuarioService, logger *zap.Logger, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		db:           db,
		usuarios:     usuarios,
		logger:       logger,
		secureCookie: secureCookie,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register crea un usuario nuevo; no requiere autenticación.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var input services.RegisterInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Solicitud inválida"})
		return
	}

	usuario, err := h.usuarios.Register(input)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Usuario creado exitosamente",
		"user":    types.NewUsuarioResponse(usuario),
	})
}

// Login verifica las credenciales y asocia el id del usuario a la
// sesión de la petición.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req loginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Solicitud inválida"})
		return
	}

	usuario, err := auth.VerifyCredentials(h.db, req.Email, req.Password)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	if err := auth.SetSessionUser(ctx, usuario.ID, h.secureCookie); err != nil {
		h.logger.Error("error al guardar la sesión", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Login exitoso",
		"user":    types.NewUsuarioResponse(usuario),
	})
}

// Logout invalida la sesión inmediatamente.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	if err := auth.ClearSession(ctx); err != nil {
		h.logger.Error("error al cerrar la sesión", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

// Me devuelve el principal autenticado.
func (h *AuthHandler) Me(ctx *gin.Context) {
	principal, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "No autenticado"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": principal})
}
