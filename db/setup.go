package db

import (
	"github.com/unla-startups/convocatorias-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection. The handle is returned and
// injected explicitly into services, not held as a package global.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates the schema for any entity whose table is missing.
func Migrate(conn *gorm.DB) error {
	entities := []interface{}{
		&models.Usuario{},
		&models.Convocatoria{},
		&models.Proyecto{},
		&models.UsuarioProyecto{},
	}

	migrator := conn.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := conn.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
