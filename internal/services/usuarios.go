package services

import (
	"errors"
	"strings"

	"github.com/unla-startups/convocatorias-api/internal/apperrors"
	"github.com/unla-startups/convocatorias-api/internal/auth"
	"github.com/unla-startups/convocatorias-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UsuarioService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewUsuarioService(db *gorm.DB, logger *zap.Logger) *UsuarioService {
	return &UsuarioService{db: db, logger: logger}
}

type RegisterInput struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// List devuelve todos los usuarios, sin el hash de contraseña.
func (s *UsuarioService) List() ([]models.Usuario, error) {
	var usuarios []models.Usuario

	if err := s.db.Find(&usuarios).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	return usuarios, nil
}

// Register crea un usuario nuevo. El email debe ser único; el rol es
// opcional y por defecto FINAL.
func (s *UsuarioService) Register(input RegisterInput) (*models.Usuario, error) {
	input.Email = strings.TrimSpace(input.Email)

	if input.Nombre == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.Validation("Los campos nombre, email y password son requeridos")
	}

	rol := input.Rol
	if rol == "" {
		rol = models.RolFinal
	}

	if !models.ValidRol(rol) {
		return nil, apperrors.Validation("Rol inválido. Debe ser uno de: ADMIN, STAFF, FINAL")
	}

	var existente models.Usuario

	err := s.db.Where("email = ?", input.Email).First(&existente).Error

	if err == nil {
		return nil, apperrors.Conflict("El usuario ya existe con ese email")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err)
	}

	hash, err := auth.HashPassword(input.Password)

	if err != nil {
		return nil, apperrors.Internal(err)
	}

	usuario := models.Usuario{
		Nombre:   input.Nombre,
		Email:    input.Email,
		Password: hash,
		Rol:      rol,
	}

	if err := s.db.Create(&usuario).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("usuario registrado", zap.Uint("usuario_id", usuario.ID), zap.String("rol", usuario.Rol))

	return &usuario, nil
}

// UpdateRole cambia el rol de otro usuario. Un administrador no puede
// cambiar su propio rol, para no dejar el sistema sin administradores.
func (s *UsuarioService) UpdateRole(callerID, targetID uint, newRole string) (*models.Usuario, error) {
	if targetID == 0 || newRole == "" {
		return nil, apperrors.Validation("Se requiere userId y newRole")
	}

	if !models.ValidRol(newRole) {
		return nil, apperrors.Validation("Rol inválido. Debe ser uno de: ADMIN, STAFF, FINAL")
	}

	if targetID == callerID {
		return nil, apperrors.Validation("No puedes cambiar tu propio rol")
	}

	var usuario models.Usuario

	if err := s.db.First(&usuario, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Usuario no encontrado")
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.db.Model(&usuario).Update("rol", newRole).Error; err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("rol de usuario actualizado",
		zap.Uint("usuario_id", targetID),
		zap.Uint("admin_id", callerID),
		zap.String("rol", newRole))

	return &usuario, nil
}
