package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MarcelaRV/seguimientos_end/models"
	"github.com/MarcelaRV/seguimientos_end/repository"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DatastoreRequest petición del punto de acceso único de datos: una acción
// con su carga de datos, en el formato de la API original
type DatastoreRequest struct {
	Action string          `json:"action" binding:"required"`
	Data   json.RawMessage `json:"data"`
}

// rawFollowupInput seguimiento en el formato de la API original; el número
// de secuencia puede venir calculado por el cliente
type rawFollowupInput struct {
	LeaderID           int64  `json:"leader_id"`
	Type               string `json:"type"`
	Observations       string `json:"observations"`
	Agreements         string `json:"agreements"`
	FollowupDate       string `json:"followup_date"`
	NextFollowupDate   string `json:"next_followup_date"`
	SequenceNumber     int    `json:"sequence_number"`
	PreviousFollowupID string `json:"previous_followup_id"`
}

// DatastoreGet despacho de acciones de solo lectura por parámetro de consulta
func DatastoreGet(c *gin.Context) {
	switch c.Query("action") {
	case "getLeaders":
		GetLeaders(c)
	case "getTopics":
		GetTopics(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acción inválida"})
	}
}

// DatastorePost despacho del punto de acceso único de datos
func DatastorePost(c *gin.Context) {
	var req DatastoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de petición inválidos"})
		return
	}

	utils.LogInfo(map[string]interface{}{"action": req.Action}, "Acción recibida")

	switch req.Action {
	case "getLeaders":
		GetLeaders(c)
	case "getTopics":
		GetTopics(c)
	case "addLeaders":
		datastoreAddLeaders(c, req.Data)
	case "addFollowup":
		datastoreAddFollowup(c, req.Data)
	case "addTopicRatings":
		datastoreAddTopicRatings(c, req.Data)
	case "getFollowups":
		datastoreGetFollowups(c, req.Data)
	case "getPreviousFollowup":
		datastoreGetPreviousFollowup(c, req.Data)
	case "getAllFollowups":
		GetAllFollowups(c)
	case "getAllFollowupTopics":
		datastoreGetAllRatings(c)
	case "deleteAllFollowups":
		if !requireAdminToken(c) {
			return
		}
		DeleteAllFollowups(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acción inválida"})
	}
}

// requireAdminToken exige un token de administrador para las acciones
// destructivas del despachador
func requireAdminToken(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Acceso no autorizado"})
		return false
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token inválido"})
		return false
	}

	if role, _ := claims["role"].(string); role != string(models.UserRoleADMIN) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Permisos insuficientes"})
		return false
	}

	return true
}

func datastoreAddLeaders(c *gin.Context, data json.RawMessage) {
	var input AddLeadersInput
	if err := json.Unmarshal(data, &input); err != nil || len(input.Leaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de petición inválidos"})
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
		message = "Líderes agregados exitosamente"
	}
	utils.SuccessResponse(c, inserted, message)
}

func datastoreAddFollowup(c *gin.Context, data json.RawMessage) {
	var input rawFollowupInput
	if err := json.Unmarshal(data, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de petición inválidos"})
		return
	}

	if input.LeaderID == 0 || input.FollowupDate == "" {
		utils.HandleError(c, utils.CreateValidationError("Debes seleccionar un líder y una fecha de seguimiento"))
		return
	}

	followupDate, err := parseFollowupDate(input.FollowupDate)
	if err != nil {
		utils.HandleError(c, utils.CreateValidationError("Fecha de seguimiento inválida"))
		return
	}

	followup := models.Followup{
		LeaderID:       input.LeaderID,
		Type:           input.Type,
		Observations:   input.Observations,
		Agreements:     input.Agreements,
		FollowupDate:   followupDate,
		SequenceNumber: input.SequenceNumber,
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

	created, err := repository.InsertFollowup(context.Background(), followup)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": created})
}

func datastoreAddTopicRatings(c *gin.Context, data json.RawMessage) {
	var input struct {
		FollowupID   string `json:"followup_id"`
		TopicRatings []struct {
			TopicID string `json:"topic_id"`
			Rating  int    `json:"rating"`
		} `json:"topicRatings"`
	}
	if err := json.Unmarshal(data, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de petición inválidos"})
		return
	}

	followupID, err := primitive.ObjectIDFromHex(input.FollowupID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador de seguimiento inválido"})
		return
	}

	ratings := make([]models.FollowupTopic, 0, len(input.TopicRatings))
	for _, r := range input.TopicRatings {
		if r.Rating < 1 || r.Rating > 5 {
			utils.HandleError(c, utils.CreateValidationError("La calificación debe estar entre 1 y 5"))
			return
		}
		ratings = append(ratings, models.FollowupTopic{
			TopicID: r.TopicID,
			Rating:  r.Rating,
		})
	}

	if err := repository.AttachRatings(context.Background(), followupID, ratings); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "")
}

func datastoreGetFollowups(c *gin.Context, data json.RawMessage) {
	var input struct {
		LeaderID int64 `json:"leader_id"`
	}
	if err := json.Unmarshal(data, &input); err != nil || input.LeaderID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El identificador del líder es obligatorio"})
		return
	}

	followups, err := repository.ListFollowupsByLeader(context.Background(), input.LeaderID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": followups})
}

func datastoreGetPreviousFollowup(c *gin.Context, data json.RawMessage) {
	var input struct {
		FollowupID string `json:"followup_id"`
	}
	if err := json.Unmarshal(data, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de petición inválidos"})
		return
	}

	id, err := primitive.ObjectIDFromHex(input.FollowupID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador de seguimiento inválido"})
		return
	}

	result, err := repository.GetPreviousFollowup(context.Background(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

func datastoreGetAllRatings(c *gin.Context) {
	ratings, err := repository.ListAllRatings(context.Background())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ratings})
}
