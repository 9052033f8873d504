package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unla-startups/convocatorias-api/internal/config"
	"github.com/unla-startups/convocatorias-api/internal/handlers"
	"github.com/unla-startups/convocatorias-api/internal/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sessionCookieName = "convocatorias_session"

func NewRouter(conn *gorm.DB, cfg *config.Config, logger *zap.Logger,
	authHandler *handlers.AuthHandler,
	convocatoriaHandler *handlers.ConvocatoriaHandler,
	proyectoHandler *handlers.ProyectoHandler,
	usuarioHandler *handlers.UsuarioHandler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
	})
	r.Use(sessions.Sessions(sessionCookieName, store))

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Bienvenido a la API de Proyectos 🚀")
	})

	requireAuth := middleware.RequireAuth(conn, logger)

	api := r.Group("/api")
	{
		api.GET("", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		convocatorias := api.Group("/convocatorias")
		{
			convocatorias.GET("", convocatoriaHandler.List)
			convocatorias.GET("/:id", convocatoriaHandler.Get)
			convocatorias.GET("/:id/proyectos", convocatoriaHandler.ListProyectos)

			staff := convocatorias.Group("", requireAuth, middleware.RequireStaff())
			{
				staff.POST("", convocatoriaHandler.Create)
				staff.PUT("/:id", convocatoriaHandler.Update)
				staff.DELETE("/:id", convocatoriaHandler.Delete)
				staff.PATCH("/:id/toggle-abierta", convocatoriaHandler.ToggleAbierta)
			}
		}

		proyectos := api.Group("/proyectos")
		{
			proyectos.GET("", proyectoHandler.List)
			proyectos.GET("/ganadores", proyectoHandler.ListGanadores)
			proyectos.GET("/:id", proyectoHandler.Get)

			authed := proyectos.Group("", requireAuth)
			{
				authed.GET("/usuario/mis-proyectos", proyectoHandler.ListMine)
				authed.POST("", proyectoHandler.Create)
				authed.PUT("/:id", proyectoHandler.Update)
				authed.DELETE("/:id", proyectoHandler.Delete)
				authed.POST("/:id/miembros", proyectoHandler.AddMember)
				authed.DELETE("/:id/miembros/:usuarioId", proyectoHandler.RemoveMember)
				authed.PATCH("/:id/toggle-ganador", middleware.RequireStaff(), proyectoHandler.ToggleGanador)
			}
		}

		users := api.Group("/users", requireAuth)
		{
			users.GET("", middleware.RequireStaff(), usuarioHandler.List)
			users.PUT("/update-role", middleware.RequireAdmin(), usuarioHandler.UpdateRole)
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Ruta no encontrada"})
	})

	return r
}
