package auth

import (
	"errors"

	"github.com/unla-startups/convocatorias-api/internal/apperrors"
	"github.com/unla-startups/convocatorias-api/internal/models"
	"gorm.io/gorm"
)

// Mensaje único para usuario inexistente y contraseña incorrecta, para
// no revelar qué emails están registrados.
const mensajeCredenciales = "Email o contraseña incorrectos"

// VerifyCredentials busca al usuario por email (coincidencia exacta) y
// compara la contraseña contra el hash almacenado. Devuelve el usuario
// completo en caso de éxito.
func VerifyCredentials(db *gorm.DB, email, password string) (*models.Usuario, error) {
	var usuario models.Usuario

	if err := db.Where("email = ?", email).First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthenticated(mensajeCredenciales)
		}
		return nil, apperrors.Internal(err)
	}

	if !CheckPassword(usuario.Password, password) {
		return nil, apperrors.Unauthenticated(mensajeCredenciales)
	}

	return &usuario, nil
}
