package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MarcelaRV/seguimientos_end/models"
	"github.com/MarcelaRV/seguimientos_end/repository"
	"github.com/MarcelaRV/seguimientos_end/service"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// sendWorkbook escribe las hojas como libro xlsx y lo envía como descarga.
// Si la generación falla no se escribe ningún archivo parcial.
func sendWorkbook(c *gin.Context, sheets []service.Sheet, filename string) {
	buf, err := service.WriteWorkbook(sheets)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportExcel genera el exporte plano: todos los seguimientos (los más
// antiguos primero) o solo los de un líder (los más recientes primero, como
// en la vista de historial)
func ExportExcel(c *gin.Context) {
	ctx := context.Background()

	var followups []models.FollowupWithTopics
	var err error
	filename := fmt.Sprintf("Reporte_Completo_%s.xlsx", service.FileTimestamp(time.Now()))

	if value := c.Query("leaderId"); value != "" {
		leaderID, parseErr := strconv.ParseInt(value, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador de líder inválido"})
			return
		}

		leader, leaderErr := repository.GetLeader(ctx, leaderID)
		if leaderErr != nil {
			utils.HandleError(c, leaderErr)
			return
		}

		followups, err = repository.ListFollowupsByLeader(ctx, leaderID)
		filename = fmt.Sprintf("Seguimientos_%s_%s.xlsx", leader.Name, service.FileTimestamp(time.Now()))
	} else {
		followups, err = repository.ListAllFollowups(ctx)
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ratings, err := repository.ListAllRatings(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	topics, err := repository.ListTopics(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	sheets := service.BuildFlatExport(followups, ratings, topics)
	sendWorkbook(c, sheets, filename)
}

// ExportPowerBI genera el exporte en esquema estrella para Power BI
func ExportPowerBI(c *gin.Context) {
	ctx := context.Background()

	followups, err := repository.ListAllFollowups(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	leaders, err := repository.ListLeaders(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	topics, err := repository.ListTopics(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	ratings, err := repository.ListAllRatings(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	sheets := service.BuildStarExport(followups, leaders, topics, ratings)
	filename := fmt.Sprintf("Seguimientos_PowerBI_%s.xlsx", service.FileTimestamp(time.Now()))
	sendWorkbook(c, sheets, filename)
}
