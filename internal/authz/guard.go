// Package authz concentra las reglas de autorización: predicados puros
// sobre el principal y, cuando aplica, el creador del recurso.
package authz

import (
	"github.com/unla-startups/convocatorias-api/internal/models"
	"github.com/unla-startups/convocatorias-api/internal/types"
)

// IsStaffOrAdmin reports whether rol grants staff-level access.
func IsStaffOrAdmin(rol string) bool {
	return rol == models.RolStaff || rol == models.RolAdmin
}

// IsAdmin reports whether rol grants admin-level access.
func IsAdmin(rol string) bool {
	return rol == models.RolAdmin
}

// CanEditProyecto permits the project's creator and STAFF/ADMIN users.
func CanEditProyecto(p types.Principal, creadoPorID uint) bool {
	return p.ID == creadoPorID || IsStaffOrAdmin(p.Rol)
}

// CanDeleteProyecto permits the project's creator and ADMIN users only.
func CanDeleteProyecto(p types.Principal, creadoPorID uint) bool {
	return p.ID == creadoPorID || IsAdmin(p.Rol)
}
