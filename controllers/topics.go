package controllers

import (
	"context"
	"net/http"

	"github.com/MarcelaRV/seguimientos_end/repository"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"github.com/gin-gonic/gin"
)

// GetTopics devuelve todos los temas, ordenados por nombre
func GetTopics(c *gin.Context) {
	topics, err := repository.ListTopics(context.Background())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": topics})
}
