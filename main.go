package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MarcelaRV/seguimientos_end/config"
	"github.com/MarcelaRV/seguimientos_end/middleware"
	"github.com/MarcelaRV/seguimientos_end/repository"
	"github.com/MarcelaRV/seguimientos_end/routes"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// Inicializar logs
	utils.InitLogger()

	// Cargar configuración
	cfg := config.LoadConfig()

	// Configurar el modo de Gin
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Inicializar la base de datos
	if err := repository.InitMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		utils.Logger.Fatal().Err(err).Msg("Error conectando a MongoDB")
	}

	defer repository.CloseMongoDB()

	// Crear la instancia de Gin
	router := gin.New()

	// Aplicar middlewares
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// Registrar rutas
	routes.RegisterRoutes(router)

	// Inicializar datos del sistema
	utils.Logger.Info().Msg("Iniciando inicialización del sistema...")
	if err := repository.InitializeCollections(); err != nil {
		utils.Logger.Error().Err(err).Msg("Error inicializando colecciones")
	}
	if err := repository.InitializeAdminAccount(); err != nil {
		utils.Logger.Error().Err(err).Msg("Error inicializando la cuenta de administrador")
	}
	utils.Logger.Info().Msg("Inicialización del sistema completada")

	// Configurar el servidor HTTP
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second, // los exportes pueden tardar
		IdleTimeout:  60 * time.Second,
	}

	// Arrancar el servidor
	go func() {
		utils.Logger.Info().Msgf("Servidor iniciado, escuchando en el puerto %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("Error iniciando el servidor")
		}
	}()

	// Apagado ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("Apagando el servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("Error en el apagado del servidor")
	}

	utils.Logger.Info().Msg("Servidor apagado correctamente")
}
