package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/MarcelaRV/seguimientos_end/repository"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"github.com/gin-gonic/gin"
)

// bootstrapTimeout plazo máximo para cargar los datos de referencia al abrir la página
const bootstrapTimeout = 10 * time.Second

// Bootstrap devuelve los líderes y temas para la carga inicial de la página.
// Ambas consultas compiten contra un plazo fijo; si el plazo vence, la carga
// completa falla.
func Bootstrap(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancel()

	leaders, err := repository.ListLeaders(ctx)
	if err != nil {
		utils.HandleError(c, utils.NewAppError("Error cargando los datos iniciales", http.StatusInternalServerError, err))
		return
	}

	topics, err := repository.ListTopics(ctx)
	if err != nil {
		utils.HandleError(c, utils.NewAppError("Error cargando los datos iniciales", http.StatusInternalServerError, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"leaders": leaders,
			"topics":  topics,
		},
	})
}

// GetDatabaseStatus devuelve el conteo de documentos por colección
func GetDatabaseStatus(c *gin.Context) {
	status, err := repository.GetDatabaseStatus()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": status})
}

// Health comprobación simple de vida del servicio
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
