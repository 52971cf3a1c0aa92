package routes

import (
	"github.com/MarcelaRV/seguimientos_end/controllers"
	"github.com/MarcelaRV/seguimientos_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterLeaderRoutes registra las rutas de líderes y temas
func RegisterLeaderRoutes(router *gin.Engine) {
	leaders := router.Group("/api/leaders")

	// Listado de líderes para los formularios
	leaders.GET("", controllers.GetLeaders)

	// Resumen derivado con la síntesis narrativa de progreso
	leaders.GET("/:id/summary", controllers.GetLeaderSummary)

	// Carga de líderes en bloque, solo administradores
	leaders.POST("", middleware.AuthMiddleware(), middleware.AdminOnly(), controllers.AddLeaders)

	router.GET("/api/topics", controllers.GetTopics)
}
