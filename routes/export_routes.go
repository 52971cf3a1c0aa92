package routes

import (
	"github.com/MarcelaRV/seguimientos_end/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registra las rutas de exportes
func RegisterExportRoutes(router *gin.Engine) {
	export := router.Group("/api/export")

	// Exporte plano: hojas "Seguimientos" y "Temas"
	export.GET("/excel", controllers.ExportExcel)

	// Exporte en esquema estrella para Power BI
	export.GET("/powerbi", controllers.ExportPowerBI)
}
