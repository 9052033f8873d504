package services

import (
	"errors"

	"github.com/unla-startups/convocatorias-api/internal/apperrors"
	"github.com/unla-startups/convocatorias-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ConvocatoriaService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewConvocatoriaService(db *gorm.DB, logger *zap.Logger) *ConvocatoriaService {
	return &ConvocatoriaService{db: db, logger: logger}
}

type CreateConvocatoriaInput struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Abierta     *bool  `json:"abierta"`
}

type UpdateConvocatoriaInput struct {
	Titulo      *string `json:"titulo"`
	Descripcion *string `json:"descripcion"`
	Abierta     *bool   `json:"abierta"`
}

// List devuelve todas las convocatorias, más recientes primero.
func (s *ConvocatoriaService) List() ([]models.Convocatoria, error) {
	var convocatorias []models.Convocatoria

	if err := s.db.Order("creada_en DESC").Find(&convocatorias).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return convocatorias, nil
}

// Get devuelve una convocatoria con sus proyectos asociados.
func (s *ConvocatoriaService) Get(id uint) (*models.Convocatoria, error) {
	var convocatoria models.Convocatoria

	err := s.db.Preload("Proyectos").First(&convocatoria, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Convocatoria no encontrada")
		}
		return nil, apperrors.Internal(err)
	}

	return &convocatoria, nil
}

// Create valida los campos requeridos y crea la convocatoria. Abierta
// vale true salvo que se indique lo contrario.
func (s *ConvocatoriaService) Create(input CreateConvocatoriaInput) (*models.Convocatoria, error) {
	if input.Titulo == "" || input.Descripcion == "" {
		return nil, apperrors.Validation("Los campos titulo y descripcion son requeridos")
	}

	abierta := true
	if input.Abierta != nil {
		abierta = *input.Abierta
	}

	convocatoria := models.Convocatoria{
		Titulo:      input.Titulo,
		Descripcion: input.Descripcion,
		Abierta:     abierta,
	}

	if err := s.db.Create(&convocatoria).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return &convocatoria, nil
}

// Update aplica una actualización parcial: solo cambian los campos
// presentes en la entrada.
func (s *ConvocatoriaService) Update(id uint, input UpdateConvocatoriaInput) (*models.Convocatoria, error) {
	var convocatoria models.Convocatoria

	if err := s.db.First(&convocatoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Convocatoria no encontrada")
		}
		return nil, apperrors.Internal(err)
	}

	updates := make(map[string]interface{})

	if input.Titulo != nil {
		updates["titulo"] = *input.Titulo
	}
	if input.Descripcion != nil {
		updates["descripcion"] = *input.Descripcion
	}
	if input.Abierta != nil {
		updates["abierta"] = *input.Abierta
	}

	if len(updates) > 0 {
		if err := s.db.Model(&convocatoria).Updates(updates).Error; err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	return &convocatoria, nil
}

// Delete elimina una convocatoria siempre que no tenga proyectos
// asociados; la verificación es una consulta explícita, no se delega a
// la restricción de clave foránea.
func (s *ConvocatoriaService) Delete(id uint) error {
	var convocatoria models.Convocatoria

	if err := s.db.First(&convocatoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Convocatoria no encontrada")
		}
		return apperrors.Internal(err)
	}

	var count int64

	if err := s.db.Model(&models.Proyecto{}).Where("convocatoria_id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Internal(err)
	}

	if count > 0 {
		return apperrors.Conflict("No se puede eliminar la convocatoria porque tiene proyectos asociados")
	}

	if err := s.db.Delete(&convocatoria).Error; err != nil {
		return apperrors.Internal(err)
	}

	s.logger.Info("convocatoria eliminada", zap.Uint("convocatoria_id", id))

	return nil
}

// ToggleAbierta invierte el estado abierta/cerrada.
func (s *ConvocatoriaService) ToggleAbierta(id uint) (*models.Convocatoria, error) {
	var convocatoria models.Convocatoria

	if err := s.db.First(&convocatoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Convocatoria no encontrada")
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.db.Model(&convocatoria).Update("abierta", !convocatoria.Abierta).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return &convocatoria, nil
}

// ListProyectos devuelve los proyectos de una convocatoria, cada uno
// con los datos públicos de su creador.
func (s *ConvocatoriaService) ListProyectos(id uint) ([]models.Proyecto, error) {
	var proyectos []models.Proyecto

	err := s.db.
		Where("convocatoria_id = ?", id).
		Preload("Creador").
		Find(&proyectos).Error

	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return proyectos, nil
}
