package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unla-startups/convocatorias-api/internal/apperrors"
	"github.com/unla-startups/convocatorias-api/internal/models"
	"github.com/unla-startups/convocatorias-api/internal/services"
	"github.com/unla-startups/convocatorias-api/internal/testutils"
	"gorm.io/gorm"
)

type proyectoFixture struct {
	svc     *services.ProyectoService
	conn    *gorm.DB
	creador *models.Usuario
	otro    *models.Usuario
	staff   *models.Usuario
	admin   *models.Usuario
}

func newProyectoFixture(t *testing.T) *proyectoFixture {
	conn := testutils.NewTestDB(t)
	return &proyectoFixture{
		svc:     services.NewProyectoService(conn, testutils.TestLogger(t)),
		conn:    conn,
		creador: testutils.SeedUsuario(t, conn, "Creadora", "creadora@unla.edu.ar", "pw123456", models.RolFinal),
		otro:    testutils.SeedUsuario(t, conn, "Otro", "otro@unla.edu.ar", "pw123456", models.RolFinal),
		staff:   testutils.SeedUsuario(t, conn, "Staff", "staff@unla.edu.ar", "pw123456", models.RolStaff),
		admin:   testutils.SeedUsuario(t, conn, "Admin", "admin@unla.edu.ar", "pw123456", models.RolAdmin),
	}
}

func (f *proyectoFixture) convocatoria(t *testing.T, abierta bool) *models.Convocatoria {
	t.Helper()
	convocatoria := &models.Convocatoria{Titulo: "Convocatoria", Descripcion: "d", Abierta: abierta}
	require.NoError(t, f.conn.Create(convocatoria).Error)
	return convocatoria
}

func TestProyectoCreate(t *testing.T) {
	f := newProyectoFixture(t)

	t.Run("el creador es el principal autenticado", func(t *testing.T) {
		proyecto, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{
			Titulo:      "Mi proyecto",
			Descripcion: "Una idea",
		})
		require.NoError(t, err)
		assert.Equal(t, f.creador.ID, proyecto.CreadoPorID)
		assert.False(t, proyecto.Ganador)
	})

	t.Run("round-trip con get", func(t *testing.T) {
		creado, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{
			Titulo:      "Persistente",
			Descripcion: "Se relee igual",
		})
		require.NoError(t, err)

		leido, err := f.svc.Get(creado.ID)
		require.NoError(t, err)
		assert.Equal(t, "Persistente", leido.Titulo)
		assert.Equal(t, "Se relee igual", leido.Descripcion)
		assert.Equal(t, f.creador.ID, leido.CreadoPorID)
	})

	t.Run("campos requeridos", func(t *testing.T) {
		_, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{Titulo: "solo titulo"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("convocatoria abierta acepta el proyecto", func(t *testing.T) {
		abierta := f.convocatoria(t, true)
		proyecto, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{
			Titulo:         "Con convocatoria",
			Descripcion:    "d",
			ConvocatoriaID: &abierta.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, proyecto.ConvocatoriaID)
		assert.Equal(t, abierta.ID, *proyecto.ConvocatoriaID)
	})

	t.Run("convocatoria cerrada rechaza el proyecto", func(t *testing.T) {
		cerrada := f.convocatoria(t, false)

		var antes int64
		require.NoError(t, f.conn.Model(&models.Proyecto{}).Count(&antes).Error)

		_, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{
			Titulo:         "Tarde",
			Descripcion:    "d",
			ConvocatoriaID: &cerrada.ID,
		})
		assert.ErrorIs(t, err, apperrors.ErrConflict)

		// No se creó nada.
		var despues int64
		require.NoError(t, f.conn.Model(&models.Proyecto{}).Count(&despues).Error)
		assert.Equal(t, antes, despues)
	})

	t.Run("convocatoria inexistente", func(t *testing.T) {
		_, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{
			Titulo:         "Sin destino",
			Descripcion:    "d",
			ConvocatoriaID: uintPtr(9999),
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestProyectoUpdatePermisos(t *testing.T) {
	f := newProyectoFixture(t)

	proyecto, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{
		Titulo:      "Original",
		Descripcion: "d",
	})
	require.NoError(t, err)

	t.Run("el creador puede actualizar", func(t *testing.T) {
		actualizado, err := f.svc.Update(principal(f.creador), proyecto.ID, services.UpdateProyectoInput{
			Titulo: strPtr("Editado por creador"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Editado por creador", actualizado.Titulo)
	})

	t.Run("otro usuario FINAL no puede", func(t *testing.T) {
		_, err := f.svc.Update(principal(f.otro), proyecto.ID, services.UpdateProyectoInput{
			Titulo: strPtr("Intruso"),
		})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("staff puede actualizar", func(t *testing.T) {
		actualizado, err := f.svc.Update(principal(f.staff), proyecto.ID, services.UpdateProyectoInput{
			Titulo: strPtr("Editado por staff"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Editado por staff", actualizado.Titulo)
	})

	t.Run("no encontrado", func(t *testing.T) {
		_, err := f.svc.Update(principal(f.creador), 9999, services.UpdateProyectoInput{})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestProyectoUpdateConvocatoria(t *testing.T) {
	f := newProyectoFixture(t)

	abierta := f.convocatoria(t, true)
	cerrada := f.convocatoria(t, false)

	proyecto, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{
		Titulo:         "Mudable",
		Descripcion:    "d",
		ConvocatoriaID: &abierta.ID,
	})
	require.NoError(t, err)

	t.Run("cambiar a convocatoria cerrada falla", func(t *testing.T) {
		_, err := f.svc.Update(principal(f.creador), proyecto.ID, services.UpdateProyectoInput{
			ConvocatoriaID: &cerrada.ID,
		})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("mantener la misma convocatoria no se revalida", func(t *testing.T) {
		// La convocatoria actual se cierra; el proyecto conserva la
		// referencia y puede seguir editándose.
		require.NoError(t, f.conn.Model(abierta).Update("abierta", false).Error)

		actualizado, err := f.svc.Update(principal(f.creador), proyecto.ID, services.UpdateProyectoInput{
			Titulo:         strPtr("Sigue adentro"),
			ConvocatoriaID: &abierta.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Sigue adentro", actualizado.Titulo)
	})
}

func TestProyectoDelete(t *testing.T) {
	f := newProyectoFixture(t)

	crear := func(t *testing.T) *models.Proyecto {
		proyecto, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{
			Titulo:      "Borrable",
			Descripcion: "d",
		})
		require.NoError(t, err)
		return proyecto
	}

	t.Run("staff no puede eliminar", func(t *testing.T) {
		proyecto := crear(t)
		err := f.svc.Delete(principal(f.staff), proyecto.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("otro usuario FINAL no puede eliminar", func(t *testing.T) {
		proyecto := crear(t)
		err := f.svc.Delete(principal(f.otro), proyecto.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("el creador elimina el proyecto y sus membresías", func(t *testing.T) {
		proyecto := crear(t)
		_, err := f.svc.AddMember(principal(f.creador), proyecto.ID, f.otro.ID)
		require.NoError(t, err)

		require.NoError(t, f.svc.Delete(principal(f.creador), proyecto.ID))

		_, err = f.svc.Get(proyecto.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		// Sin filas de membresía huérfanas.
		var count int64
		require.NoError(t, f.conn.Model(&models.UsuarioProyecto{}).Where("proyecto_id = ?", proyecto.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("admin puede eliminar", func(t *testing.T) {
		proyecto := crear(t)
		require.NoError(t, f.svc.Delete(principal(f.admin), proyecto.ID))
	})

	t.Run("no encontrado", func(t *testing.T) {
		err := f.svc.Delete(principal(f.admin), 9999)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestProyectoToggleGanadorIdempotenteAlDoble(t *testing.T) {
	f := newProyectoFixture(t)

	proyecto, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{
		Titulo:      "Candidato",
		Descripcion: "d",
	})
	require.NoError(t, err)
	require.False(t, proyecto.Ganador)

	marcado, err := f.svc.ToggleGanador(proyecto.ID)
	require.NoError(t, err)
	assert.True(t, marcado.Ganador)

	desmarcado, err := f.svc.ToggleGanador(proyecto.ID)
	require.NoError(t, err)
	assert.False(t, desmarcado.Ganador)

	_, err = f.svc.ToggleGanador(9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProyectoListGanadores(t *testing.T) {
	f := newProyectoFixture(t)

	ganador, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{Titulo: "Ganador", Descripcion: "d"})
	require.NoError(t, err)
	_, err = f.svc.Create(principal(f.creador), services.CreateProyectoInput{Titulo: "Participante", Descripcion: "d"})
	require.NoError(t, err)

	_, err = f.svc.ToggleGanador(ganador.ID)
	require.NoError(t, err)

	ganadores, err := f.svc.ListGanadores()
	require.NoError(t, err)
	require.Len(t, ganadores, 1)
	assert.Equal(t, "Ganador", ganadores[0].Titulo)
	require.NotNil(t, ganadores[0].Creador)
	assert.Equal(t, f.creador.ID, ganadores[0].Creador.ID)
}

func TestProyectoListMine(t *testing.T) {
	f := newProyectoFixture(t)

	_, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{Titulo: "Mío", Descripcion: "d"})
	require.NoError(t, err)
	_, err = f.svc.Create(principal(f.otro), services.CreateProyectoInput{Titulo: "Ajeno", Descripcion: "d"})
	require.NoError(t, err)

	mios, err := f.svc.ListMine(f.creador.ID)
	require.NoError(t, err)
	require.Len(t, mios, 1)
	assert.Equal(t, "Mío", mios[0].Titulo)
}

func TestProyectoMiembros(t *testing.T) {
	f := newProyectoFixture(t)

	proyecto, err := f.svc.Create(principal(f.creador), services.CreateProyectoInput{
		Titulo:      "Colaborativo",
		Descripcion: "d",
	})
	require.NoError(t, err)

	t.Run("otro usuario no puede administrar miembros", func(t *testing.T) {
		_, err := f.svc.AddMember(principal(f.otro), proyecto.ID, f.otro.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("el creador agrega un miembro", func(t *testing.T) {
		conMiembro, err := f.svc.AddMember(principal(f.creador), proyecto.ID, f.otro.ID)
		require.NoError(t, err)
		require.Len(t, conMiembro.UsuarioProyectos, 1)
		require.NotNil(t, conMiembro.UsuarioProyectos[0].Usuario)
		assert.Equal(t, f.otro.ID, conMiembro.UsuarioProyectos[0].Usuario.ID)
	})

	t.Run("membresía duplicada", func(t *testing.T) {
		_, err := f.svc.AddMember(principal(f.creador), proyecto.ID, f.otro.ID)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		_, err := f.svc.AddMember(principal(f.creador), proyecto.ID, 9999)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("staff quita un miembro", func(t *testing.T) {
		require.NoError(t, f.svc.RemoveMember(principal(f.staff), proyecto.ID, f.otro.ID))
	})

	t.Run("quitar a quien no es miembro", func(t *testing.T) {
		err := f.svc.RemoveMember(principal(f.creador), proyecto.ID, f.otro.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
