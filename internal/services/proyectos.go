package services

import (
	"errors"

	"github.com/unla-startups/convocatorias-api/internal/apperrors"
	"github.com/unla-startups/convocatorias-api/internal/authz"
	"github.com/unla-startups/convocatorias-api/internal/models"
	"github.com/unla-startups/convocatorias-api/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProyectoService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProyectoService(db *gorm.DB, logger *zap.Logger) *ProyectoService {
	return &ProyectoService{db: db, logger: logger}
}

type CreateProyectoInput struct {
	Titulo         string `json:"titulo"`
	Descripcion    string `json:"descripcion"`
	ContactoEmail  string `json:"contacto_email"`
	ContactoCampus string `json:"contacto_campus"`
	ConvocatoriaID *uint  `json:"convocatoriaId"`
}

type UpdateProyectoInput struct {
	Titulo         *string `json:"titulo"`
	Descripcion    *string `json:"descripcion"`
	ContactoEmail  *string `json:"contacto_email"`
	ContactoCampus *string `json:"contacto_campus"`
	ConvocatoriaID *uint   `json:"convocatoriaId"`
}

// List devuelve todos los proyectos, más recientes primero, con el
// creador y la convocatoria incluidos.
func (s *ProyectoService) List() ([]models.Proyecto, error) {
	var proyectos []models.Proyecto

	err := s.db.
		Preload("Creador").
		Preload("Convocatoria").
		Order("creado_en DESC").
		Find(&proyectos).Error

	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return proyectos, nil
}

// ListGanadores devuelve solo los proyectos marcados como ganadores.
func (s *ProyectoService) ListGanadores() ([]models.Proyecto, error) {
	var proyectos []models.Proyecto

	err := s.db.
		Where("ganador = ?", true).
		Preload("Creador").
		Preload("Convocatoria").
		Order("creado_en DESC").
		Find(&proyectos).Error

	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return proyectos, nil
}

// Get devuelve un proyecto con creador, convocatoria y la lista de
// miembros resuelta a usuarios.
func (s *ProyectoService) Get(id uint) (*models.Proyecto, error) {
	var proyecto models.Proyecto

	err := s.db.
		Preload("Creador").
		Preload("Convocatoria").
		Preload("UsuarioProyectos.Usuario").
		First(&proyecto, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Proyecto no encontrado")
		}
		return nil, apperrors.Internal(err)
	}

	return &proyecto, nil
}

// checkConvocatoriaAbierta verifies the call exists and still accepts
// projects.
func (s *ProyectoService) checkConvocatoriaAbierta(id uint) error {
	var convocatoria models.Convocatoria

	if err := s.db.First(&convocatoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Convocatoria no encontrada")
		}
		return apperrors.Internal(err)
	}

	if !convocatoria.Abierta {
		return apperrors.Conflict("Esta convocatoria ya no está abierta para nuevos proyectos")
	}

	return nil
}

// Create valida los campos y, si se indicó convocatoria, que exista y
// esté abierta. El creador es siempre el principal autenticado.
func (s *ProyectoService) Create(principal types.Principal, input CreateProyectoInput) (*models.Proyecto, error) {
	if input.Titulo == "" || input.Descripcion == "" {
		return nil, apperrors.Validation("Los campos titulo y descripcion son requeridos")
	}

	if input.ConvocatoriaID != nil {
		if err := s.checkConvocatoriaAbierta(*input.ConvocatoriaID); err != nil {
			return nil, err
		}
	}

	proyecto := models.Proyecto{
		Titulo:         input.Titulo,
		Descripcion:    input.Descripcion,
		ContactoEmail:  input.ContactoEmail,
		ContactoCampus: input.ContactoCampus,
		ConvocatoriaID: input.ConvocatoriaID,
		CreadoPorID:    principal.ID,
	}

	if err := s.db.Create(&proyecto).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return s.Get(proyecto.ID)
}

// Update aplica una actualización parcial. Solo el creador o un
// STAFF/ADMIN pueden actualizar; si cambia la convocatoria se vuelve a
// validar su existencia y estado.
func (s *ProyectoService) Update(principal types.Principal, id uint, input UpdateProyectoInput) (*models.Proyecto, error) {
	var proyecto models.Proyecto

	if err := s.db.First(&proyecto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Proyecto no encontrado")
		}
		return nil, apperrors.Internal(err)
	}

	if !authz.CanEditProyecto(principal, proyecto.CreadoPorID) {
		return nil, apperrors.Forbidden("No tienes permiso para actualizar este proyecto")
	}

	cambiaConvocatoria := input.ConvocatoriaID != nil &&
		(proyecto.ConvocatoriaID == nil || *input.ConvocatoriaID != *proyecto.ConvocatoriaID)

	if cambiaConvocatoria {
		if err := s.checkConvocatoriaAbierta(*input.ConvocatoriaID); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})

	if input.Titulo != nil {
		updates["titulo"] = *input.Titulo
	}
	if input.Descripcion != nil {
		updates["descripcion"] = *input.Descripcion
	}
	if input.ContactoEmail != nil {
		updates["contacto_email"] = *input.ContactoEmail
	}
	if input.ContactoCampus != nil {
		updates["contacto_campus"] = *input.ContactoCampus
	}
	if input.ConvocatoriaID != nil {
		updates["convocatoria_id"] = *input.ConvocatoriaID
	}

	if len(updates) > 0 {
		if err := s.db.Model(&proyecto).Updates(updates).Error; err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	return s.Get(id)
}

// Delete elimina un proyecto y sus filas de membresía en una única
// transacción. Solo el creador o un ADMIN pueden eliminar.
func (s *ProyectoService) Delete(principal types.Principal, id uint) error {
	var proyecto models.Proyecto

	if err := s.db.First(&proyecto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Proyecto no encontrado")
		}
		return apperrors.Internal(err)
	}

	if !authz.CanDeleteProyecto(principal, proyecto.CreadoPorID) {
		return apperrors.Forbidden("No tienes permiso para eliminar este proyecto")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proyecto_id = ?", id).Delete(&models.UsuarioProyecto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&proyecto).Error
	})

	if err != nil {
		return apperrors.Internal(err)
	}

	s.logger.Info("proyecto eliminado", zap.Uint("proyecto_id", id), zap.Uint("usuario_id", principal.ID))

	return nil
}

// ToggleGanador invierte la marca de ganador.
func (s *ProyectoService) ToggleGanador(id uint) (*models.Proyecto, error) {
	var proyecto models.Proyecto

	if err := s.db.First(&proyecto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Proyecto no encontrado")
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.db.Model(&proyecto).Update("ganador", !proyecto.Ganador).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return s.Get(id)
}

// ListMine devuelve los proyectos creados por el usuario, más
// recientes primero, con la convocatoria incluida.
func (s *ProyectoService) ListMine(usuarioID uint) ([]models.Proyecto, error) {
	var proyectos []models.Proyecto

	err := s.db.
		Where("creado_por_id = ?", usuarioID).
		Preload("Convocatoria").
		Order("creado_en DESC").
		Find(&proyectos).Error

	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return proyectos, nil
}

// AddMember agrega un colaborador al proyecto. Solo el creador o un
// STAFF/ADMIN pueden administrar miembros.
func (s *ProyectoService) AddMember(principal types.Principal, proyectoID, usuarioID uint) (*models.Proyecto, error) {
	var proyecto models.Proyecto

	if err := s.db.First(&proyecto, proyectoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Proyecto no encontrado")
		}
		return nil, apperrors.Internal(err)
	}

	if !authz.CanEditProyecto(principal, proyecto.CreadoPorID) {
		return nil, apperrors.Forbidden("No tienes permiso para administrar los miembros de este proyecto")
	}

	var usuario models.Usuario

	if err := s.db.First(&usuario, usuarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Usuario no encontrado")
		}
		return nil, apperrors.Internal(err)
	}

	var count int64

	if err := s.db.Model(&models.UsuarioProyecto{}).
		Where("proyecto_id = ? AND usuario_id = ?", proyectoID, usuarioID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	if count > 0 {
		return nil, apperrors.Conflict("El usuario ya es miembro del proyecto")
	}

	miembro := models.UsuarioProyecto{UsuarioID: usuarioID, ProyectoID: proyectoID}

	if err := s.db.Create(&miembro).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return s.Get(proyectoID)
}

// RemoveMember quita un colaborador del proyecto.
func (s *ProyectoService) RemoveMember(principal types.Principal, proyectoID, usuarioID uint) error {
	var proyecto models.Proyecto

	if err := s.db.First(&proyecto, proyectoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Proyecto no encontrado")
		}
		return apperrors.Internal(err)
	}

	if !authz.CanEditProyecto(principal, proyecto.CreadoPorID) {
		return apperrors.Forbidden("No tienes permiso para administrar los miembros de este proyecto")
	}

	result := s.db.
		Where("proyecto_id = ? AND usuario_id = ?", proyectoID, usuarioID).
		Delete(&models.UsuarioProyecto{})

	if result.Error != nil {
		return apperrors.Internal(result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("El usuario no es miembro del proyecto")
	}

	return nil
}
