package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/MarcelaRV/seguimientos_end/models"
	"github.com/MarcelaRV/seguimientos_end/repository"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseFollowupDate interpreta una fecha del formulario. Las fechas sin hora
// se fijan a las 12:00 UTC para evitar corrimientos de zona horaria.
func parseFollowupDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// validateCreateFollowupInput valida el formulario antes de cualquier escritura
func validateCreateFollowupInput(input *models.CreateFollowupInput) *utils.ApiError {
	if input.LeaderID == 0 {
		return utils.CreateValidationError("Debes seleccionar un líder")
	}
	if input.FollowupDate == "" {
		return utils.CreateValidationError("Debes seleccionar una fecha de seguimiento")
	}
	if input.Type == "" {
		input.Type = models.FollowupTypeAcompanamiento
	}
	if input.Type != models.FollowupTypeAcompanamiento && input.Type != models.FollowupTypeFelicitaciones {
		return utils.CreateValidationError("Tipo de seguimiento inválido")
	}
	for _, t := range input.Topics {
		if t.Rating < 0 || t.Rating > 5 {
			return utils.CreateValidationError("La calificación debe estar entre 1 y 5")
		}
	}
	return nil
}

// CreateFollowup crea un seguimiento con sus calificaciones de temas.
// El número de secuencia se asigna en la base de datos y la inserción del
// seguimiento y de sus calificaciones ocurre en una sola transacción.
func CreateFollowup(c *gin.Context) {
	var input models.CreateFollowupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de petición inválidos"})
		return
	}

	if err := validateCreateFollowupInput(&input); err != nil {
		utils.HandleError(c, err)
		return
	}

	ctx := context.Background()

	// Verificar que el líder exista antes de escribir
	if _, err := repository.GetLeader(ctx, input.LeaderID); err != nil {
		utils.HandleError(c, err)
		return
	}

	followupDate, err := parseFollowupDate(input.FollowupDate)
	if err != nil {
		utils.HandleError(c, utils.CreateValidationError("Fecha de seguimiento inválida"))
		return
	}

	followup := models.Followup{
		LeaderID:     input.LeaderID,
		Type:         input.Type,
		Observations: input.Observations,
		Agreements:   input.Agreements,
		FollowupDate: followupDate,
	}

	if input.NextFollowupDate != "" {
		nextDate, err := parseFollowupDate(input.NextFollowupDate)
		if err != nil {
			utils.HandleError(c, utils.CreateValidationError("Fecha del próximo seguimiento inválida"))
			return
		}
		followup.NextFollowupDate = &nextDate
	}

	if input.PreviousFollowupID != "" {
		previousID, err := primitive.ObjectIDFromHex(input.PreviousFollowupID)
		if err != nil {
			utils.HandleError(c, utils.CreateValidationError("Identificador del seguimiento anterior inválido"))
			return
		}
		followup.PreviousFollowupID = &previousID
	}

	ratings := make([]models.FollowupTopic, 0, len(input.Topics))
	for _, t := range input.Topics {
		rating := t.Rating
		if rating == 0 {
			rating = 1
		}
		ratings = append(ratings, models.FollowupTopic{
			TopicID: t.TopicID,
			Rating:  rating,
		})
	}

	created, err := repository.CreateFollowupWithRatings(ctx, followup, ratings)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "El seguimiento se ha guardado correctamente",
		"data":    created,
	})
}

// GetFollowupsByLeader devuelve los seguimientos de un líder, los más recientes primero
func GetFollowupsByLeader(c *gin.Context) {
	leaderID, ok := parseLeaderIDQuery(c)
	if !ok {
		return
	}

	followups, err := repository.ListFollowupsByLeader(context.Background(), leaderID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"leaderId":      leaderID,
		"followupCount": len(followups),
	}, "Seguimientos del líder consultados")

	c.JSON(http.StatusOK, gin.H{"data": followups})
}

// GetAllFollowups devuelve todos los seguimientos, los más antiguos primero
func GetAllFollowups(c *gin.Context) {
	followups, err := repository.ListAllFollowups(context.Background())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": followups})
}

// GetPreviousFollowup devuelve los datos de un seguimiento anterior para
// precargar el formulario al continuar la cadena
func GetPreviousFollowup(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador de seguimiento inválido"})
		return
	}

	data, err := repository.GetPreviousFollowup(context.Background(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// DeleteAllFollowups elimina todo el historial de seguimientos y
// calificaciones. Los líderes y los temas no se eliminan.
func DeleteAllFollowups(c *gin.Context) {
	if err := repository.DeleteAllFollowupData(context.Background()); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "Todo el historial de acompañamientos ha sido eliminado")
}
