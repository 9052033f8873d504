// Package testutils concentra los helpers compartidos por los tests:
// base de datos sqlite en memoria, logger y peticiones HTTP de prueba.
package testutils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/unla-startups/convocatorias-api/db"
	"github.com/unla-startups/convocatorias-api/internal/auth"
	"github.com/unla-startups/convocatorias-api/internal/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestLogger crea un logger zap para tests.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// NewTestDB abre una base sqlite en memoria con el esquema migrado.
// Se limita a una conexión para que :memory: sea estable.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "no se pudo abrir la base de datos de prueba")

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(conn), "no se pudo migrar el esquema de prueba")

	return conn
}

// SeedUsuario crea un usuario con la contraseña indicada ya hasheada.
func SeedUsuario(t *testing.T, conn *gorm.DB, nombre, email, password, rol string) *models.Usuario {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	usuario := &models.Usuario{
		Nombre:   nombre,
		Email:    email,
		Password: hash,
		Rol:      rol,
	}
	require.NoError(t, conn.Create(usuario).Error)

	return usuario
}

func init() {
	gin.SetMode(gin.TestMode)
}

// MakeRequest ejecuta una petición JSON contra el router de prueba.
func MakeRequest(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Reader

	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err, "no se pudo serializar el cuerpo de la petición")
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	return resp
}

// ParseResponse decodifica la respuesta JSON en dst.
func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()

	err := json.Unmarshal(resp.Body.Bytes(), dst)
	require.NoError(t, err, "respuesta no parseable: %s", resp.Body.String())
}

// SessionCookie extrae la cookie de sesión de una respuesta de login
// para reutilizarla en peticiones posteriores.
func SessionCookie(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()

	cookies := resp.Result().Cookies()
	require.NotEmpty(t, cookies, "la respuesta no trajo cookies de sesión")

	for _, c := range cookies {
		if c.Value != "" {
			return c.Name + "=" + c.Value
		}
	}

	t.Fatal("no se encontró una cookie de sesión con valor")
	return ""
}
