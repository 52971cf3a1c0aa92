package routes

import (
	"github.com/MarcelaRV/seguimientos_end/controllers"
	"github.com/MarcelaRV/seguimientos_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterStatusRoutes registra las rutas de estado y carga inicial
func RegisterStatusRoutes(router *gin.Engine) {
	// Datos de referencia para la carga inicial de la página
	router.GET("/api/bootstrap", controllers.Bootstrap)

	// Estado de la base de datos, solo administradores
	router.GET("/api/status/database", middleware.AuthMiddleware(), middleware.AdminOnly(), controllers.GetDatabaseStatus)
}
