package routes

import (
	"github.com/MarcelaRV/seguimientos_end/controllers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registra todas las rutas
func RegisterRoutes(router *gin.Engine) {
	router.GET("/health", controllers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterAuthRoutes(router)
	RegisterLeaderRoutes(router)
	RegisterFollowupRoutes(router)
	RegisterExportRoutes(router)
	RegisterDatastoreRoutes(router)
	RegisterStatusRoutes(router)
}
