package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/unla-startups/convocatorias-api/db"
	"github.com/unla-startups/convocatorias-api/internal/config"
	"github.com/unla-startups/convocatorias-api/internal/handlers"
	"github.com/unla-startups/convocatorias-api/internal/logging"
	"github.com/unla-startups/convocatorias-api/internal/router"
	"github.com/unla-startups/convocatorias-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables de entorno")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Error de configuración: %v", err)
	}

	logger, err := logging.NewLogger(cfg.IsProduction())

	if err != nil {
		log.Fatalf("Error al inicializar el logger: %v", err)
	}
	defer logger.Sync()

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		logger.Fatal("Error al conectar con la base de datos", zap.Error(err))
	}

	if err := db.Migrate(conn); err != nil {
		logger.Fatal("Error al migrar la base de datos", zap.Error(err))
	}

	usuarioService := services.NewUsuarioService(conn, logger)
	convocatoriaService := services.NewConvocatoriaService(conn, logger)
	proyectoService := services.NewProyectoService(conn, logger)

	r := router.NewRouter(conn, cfg, logger,
		handlers.NewAuthHandler(conn, usuarioService, logger, cfg.IsProduction()),
		handlers.NewConvocatoriaHandler(convocatoriaService, logger),
		handlers.NewProyectoHandler(proyectoService, logger),
		handlers.NewUsuarioHandler(usuarioService, logger),
	)

	logger.Info("Servidor iniciado", zap.String("puerto", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Error al iniciar el servidor", zap.Error(err))
	}
}
