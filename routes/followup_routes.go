package routes

import (
	"github.com/MarcelaRV/seguimientos_end/controllers"
	"github.com/MarcelaRV/seguimientos_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterFollowupRoutes registra las rutas de seguimientos
func RegisterFollowupRoutes(router *gin.Engine) {
	followups := router.Group("/api/followups")

	// Crear un seguimiento con sus calificaciones de temas
	followups.POST("", controllers.CreateFollowup)

	// Historial de un líder (los más recientes primero)
	followups.GET("", controllers.GetFollowupsByLeader)

	// Todos los seguimientos (los más antiguos primero)
	followups.GET("/all", controllers.GetAllFollowups)

	// Datos del seguimiento anterior para continuar una cadena
	followups.GET("/:id/previous", controllers.GetPreviousFollowup)

	// Eliminación de todo el historial, solo administradores
	followups.DELETE("", middleware.AuthMiddleware(), middleware.AdminOnly(), controllers.DeleteAllFollowups)
}
