package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unla-startups/convocatorias-api/internal/authz"
	"github.com/unla-startups/convocatorias-api/internal/models"
	"github.com/unla-startups/convocatorias-api/internal/types"
)

func TestIsStaffOrAdmin(t *testing.T) {
	assert.True(t, authz.IsStaffOrAdmin(models.RolAdmin))
	assert.True(t, authz.IsStaffOrAdmin(models.RolStaff))
	assert.False(t, authz.IsStaffOrAdmin(models.RolFinal))
	assert.False(t, authz.IsStaffOrAdmin(""))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, authz.IsAdmin(models.RolAdmin))
	assert.False(t, authz.IsAdmin(models.RolStaff))
	assert.False(t, authz.IsAdmin(models.RolFinal))
}

func TestCanEditProyecto(t *testing.T) {
	const creadorID = 7

	tests := []struct {
		name      string
		principal types.Principal
		want      bool
	}{
		{"creador con rol FINAL", types.Principal{ID: creadorID, Rol: models.RolFinal}, true},
		{"otro usuario FINAL", types.Principal{ID: 99, Rol: models.RolFinal}, false},
		{"staff ajeno al proyecto", types.Principal{ID: 99, Rol: models.RolStaff}, true},
		{"admin ajeno al proyecto", types.Principal{ID: 99, Rol: models.RolAdmin}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.CanEditProyecto(tt.principal, creadorID))
		})
	}
}

func TestCanDeleteProyecto(t *testing.T) {
	const creadorID = 7

	tests := []struct {
		name      string
		principal types.Principal
		want      bool
	}{
		{"creador con rol FINAL", types.Principal{ID: creadorID, Rol: models.RolFinal}, true},
		{"otro usuario FINAL", types.Principal{ID: 99, Rol: models.RolFinal}, false},
		{"staff no puede eliminar", types.Principal{ID: 99, Rol: models.RolStaff}, false},
		{"admin puede eliminar", types.Principal{ID: 99, Rol: models.RolAdmin}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.CanDeleteProyecto(tt.principal, creadorID))
		})
	}
}
