package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unla-startups/convocatorias-api/internal/services"
	"github.com/unla-startups/convocatorias-api/internal/types"
	"go.uber.org/zap"
)

type ConvocatoriaHandler struct {
	convocatorias *services.ConvocatoriaService
	logger        *zap.Logger
}

func NewConvocatoriaHandler(convocatorias *services.ConvocatoriaService, logger *zap.Logger) *ConvocatoriaHandler {
	return &ConvocatoriaHandler{convocatorias: convocatorias, logger: logger}
}

func (h *ConvocatoriaHandler) List(ctx *gin.Context) {
	convocatorias, err := h.convocatorias.List()

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	resp := make([]*types.ConvocatoriaResponse, 0, len(convocatorias))
	for i := range convocatorias {
		resp = append(resp, types.NewConvocatoriaResponse(&convocatorias[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"convocatorias": resp})
}

func (h *ConvocatoriaHandler) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "convocatoria")
	if !ok {
		return
	}

	convocatoria, err := h.convocatorias.Get(id)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"convocatoria": types.NewConvocatoriaDetalle(convocatoria)})
}

func (h *ConvocatoriaHandler) Create(ctx *gin.Context) {
	var input services.CreateConvocatoriaInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Solicitud inválida"})
		return
	}

	convocatoria, err := h.convocatorias.Create(input)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":      "Convocatoria creada exitosamente",
		"convocatoria": types.NewConvocatoriaResponse(convocatoria),
	})
}

func (h *ConvocatoriaHandler) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "convocatoria")
	if !ok {
		return
	}

	var input services.UpdateConvocatoriaInput

	if err := ctx.BindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Solicitud inválida"})
		return
	}

	convocatoria, err := h.convocatorias.Update(id, input)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "Convocatoria actualizada exitosamente",
		"convocatoria": types.NewConvocatoriaResponse(convocatoria),
	})
}

func (h *ConvocatoriaHandler) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "convocatoria")
	if !ok {
		return
	}

	if err := h.convocatorias.Delete(id); err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Convocatoria eliminada exitosamente"})
}

func (h *ConvocatoriaHandler) ToggleAbierta(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "convocatoria")
	if !ok {
		return
	}

	convocatoria, err := h.convocatorias.ToggleAbierta(id)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	estado := "cerrada"
	if convocatoria.Abierta {
		estado = "abierta"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "Convocatoria " + estado + " exitosamente",
		"convocatoria": types.NewConvocatoriaResponse(convocatoria),
	})
}

func (h *ConvocatoriaHandler) ListProyectos(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "convocatoria")
	if !ok {
		return
	}

	proyectos, err := h.convocatorias.ListProyectos(id)

	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"proyectos": types.NewProyectoResponses(proyectos)})
}
