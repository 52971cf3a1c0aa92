package routes

import (
	"github.com/MarcelaRV/seguimientos_end/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterDatastoreRoutes registra el punto de acceso único de datos,
// compatible con la API original ({action, data})
func RegisterDatastoreRoutes(router *gin.Engine) {
	router.GET("/api/datastore", controllers.DatastoreGet)
	router.POST("/api/datastore", controllers.DatastorePost)
}
