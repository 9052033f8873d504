package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unla-startups/convocatorias-api/internal/services"
	"github.com/unla-startups/convocatorias-api/internal/types"
	"github.com/unla-startups/convocatorias-api/internal/utils"
	"go.uber.org/zap"
)

type ProyectoHandler struct {
	proyectos *services.ProyectoService
	logger    *zap.Logger
}

func NewProyectoHandler(proyectos *services.ProyectoService, logger *zap.Logger) *ProyectoHandler {
	return &ProyectoHandler{proyectos: proyectos, logger: logger}
}

func (h *ProyectoHandler) List(ctx *gin.Context) {
	proyectos, err := h.proyectos.List()

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"proyectos": types.NewProyectoResponses(proyectos)})
}

func (h *ProyectoHandler) ListGanadores(ctx *gin.Context) {
	proyectos, err := h.proyectos.ListGanadores()

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"proyectos": types.NewProyectoResponses(proyectos)})
}

func (h *ProyectoHandler) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "proyecto")
	if !ok {
		return
	}

	proyecto, err := h.proyectos.Get(id)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"proyecto": types.NewProyectoResponse(proyecto)})
}

func (h *ProyectoHandler) Create(ctx *gin.Context) {
	principal, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Debes iniciar sesión para crear un proyecto"})
		return
	}

	var input services.CreateProyectoInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Solicitud inválida"})
		return
	}

	proyecto, err := h.proyectos.Create(principal, input)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Proyecto creado exitosamente",
		"proyecto": types.NewProyectoResponse(proyecto),
	})
}

func (h *ProyectoHandler) Update(ctx *gin.Context) {
	principal, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Inicia sesión para realizar esta acción"})
		return
	}

	id, ok := parseIDParam(ctx, "id", "proyecto")
	if !ok {
		return
	}

	var input services.UpdateProyectoInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Solicitud inválida"})
		return
	}

	proyecto, err := h.proyectos.Update(principal, id, input)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Proyecto actualizado exitosamente",
		"proyecto": types.NewProyectoResponse(proyecto),
	})
}

func (h *ProyectoHandler) Delete(ctx *gin.Context) {
	principal, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Inicia sesión para realizar esta acción"})
		return
	}

	id, ok := parseIDParam(ctx, "id", "proyecto")
	if !ok {
		return
	}

	if err := h.proyectos.Delete(principal, id); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Proyecto eliminado exitosamente"})
}

func (h *ProyectoHandler) ToggleGanador(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "proyecto")
	if !ok {
		return
	}

	proyecto, err := h.proyectos.ToggleGanador(id)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	estado := "desmarcado como ganador"
	if proyecto.Ganador {
		estado = "marcado como ganador"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Proyecto " + estado + " exitosamente",
		"proyecto": types.NewProyectoResponse(proyecto),
	})
}

func (h *ProyectoHandler) ListMine(ctx *gin.Context) {
	principal, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Debes iniciar sesión para ver tus proyectos"})
		return
	}

	proyectos, err := h.proyectos.ListMine(principal.ID)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"proyectos": types.NewProyectoResponses(proyectos)})
}

type addMemberRequest struct {
	UsuarioID uint `json:"usuarioId" binding:"required"`
}

func (h *ProyectoHandler) AddMember(ctx *gin.Context) {
	principal, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Inicia sesión para realizar esta acción"})
		return
	}

	id, ok := parseIDParam(ctx, "id", "proyecto")
	if !ok {
		return
	}

	var req addMemberRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Se requiere usuarioId"})
		return
	}

	proyecto, err := h.proyectos.AddMember(principal, id, req.UsuarioID)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Miembro agregado exitosamente",
		"proyecto": types.NewProyectoResponse(proyecto),
	})
}

func (h *ProyectoHandler) RemoveMember(ctx *gin.Context) {
	principal, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Inicia sesión para realizar esta acción"})
		return
	}

	id, ok := parseIDParam(ctx, "id", "proyecto")
	if !ok {
		return
	}

	usuarioID, ok := parseIDParam(ctx, "usuarioId", "usuario")
	if !ok {
		return
	}

	if err := h.proyectos.RemoveMember(principal, id, usuarioID); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Miembro eliminado exitosamente"})
}
