package routes

import (
	"github.com/MarcelaRV/seguimientos_end/controllers"
	"github.com/MarcelaRV/seguimientos_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registra las rutas de autenticación
func RegisterAuthRoutes(router *gin.Engine) {
	auth := router.Group("/api/auth")

	// Ruta pública, sin autenticación
	auth.POST("/login", controllers.Login)

	// Requiere token válido
	auth.GET("/validate", middleware.AuthMiddleware(), controllers.ValidateToken)
}
