package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseLeaderIDQuery obtiene y valida el parámetro leaderId de la consulta
func parseLeaderIDQuery(c *gin.Context) (int64, bool) {
	value := c.Query("leaderId")
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El identificador del líder es obligatorio"})
		return 0, false
	}

	leaderID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador de líder inválido"})
		return 0, false
	}

	return leaderID, true
}
