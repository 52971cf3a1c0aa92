package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MarcelaRV/seguimientos_end/repository"
	"github.com/MarcelaRV/seguimientos_end/service"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"github.com/gin-gonic/gin"
)

// GetLeaders devuelve todos los líderes, ordenados por nombre
func GetLeaders(c *gin.Context) {
	leaders, err := repository.ListLeaders(context.Background())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": leaders})
}

// AddLeadersInput datos de carga de líderes en bloque
type AddLeadersInput struct {
	Leaders []struct {
		Name string `json:"name" binding:"required"`
	} `json:"leaders" binding:"required"`
}

// AddLeaders agrega líderes en bloque; los duplicados se omiten
func AddLeaders(c *gin.Context) {
	var input AddLeadersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de petición inválidos"})
		return
	}

	if len(input.Leaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Debes enviar al menos un líder"})
		return
	}

	names := make([]string, 0, len(input.Leaders))
	for _, l := range input.Leaders {
		names = append(names, l.Name)
	}

	inserted, err := repository.InsertLeaders(context.Background(), names)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	message := "Los líderes ya existen"
	if len(inserted) > 0 {
		message = strconv.Itoa(len(inserted)) + " líder(es) agregado(s)"
	}

	utils.SuccessResponse(c, inserted, message)
}

// GetLeaderSummary devuelve el resumen derivado de un líder con su síntesis
// narrativa de progreso. Se recalcula en cada petición.
func GetLeaderSummary(c *gin.Context) {
	leaderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador de líder inválido"})
		return
	}

	ctx := context.Background()

	leader, err := repository.GetLeader(ctx, leaderID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	followups, err := repository.ListFollowupsByLeader(ctx, leaderID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	summary := service.BuildLeaderSummary(*leader, followups)

	c.JSON(http.StatusOK, gin.H{"data": summary})
}
