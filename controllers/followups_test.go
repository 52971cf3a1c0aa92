package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MarcelaRV/seguimientos_end/models"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
}

func TestParseFollowupDate(t *testing.T) {
	// Las fechas sin hora se fijan a las 12:00 UTC
	parsed, err := parseFollowupDate("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC), parsed)

	// Las marcas de tiempo completas se respetan tal cual
	parsed, err = parseFollowupDate("2025-03-09T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 9, 8, 30, 0, 0, time.UTC), parsed)

	_, err = parseFollowupDate("09/03/2025")
	assert.Error(t, err)
}

func TestValidateCreateFollowupInput(t *testing.T) {
	input := &models.CreateFollowupInput{FollowupDate: "2025-03-09"}
	err := validateCreateFollowupInput(input)
	require.NotNil(t, err)
	assert.Equal(t, "Debes seleccionar un líder", err.Message)

	input = &models.CreateFollowupInput{LeaderID: 1}
	err = validateCreateFollowupInput(input)
	require.NotNil(t, err)
	assert.Equal(t, "Debes seleccionar una fecha de seguimiento", err.Message)

	input = &models.CreateFollowupInput{LeaderID: 1, FollowupDate: "2025-03-09", Type: "otro"}
	err = validateCreateFollowupInput(input)
	require.NotNil(t, err)
	assert.Equal(t, "Tipo de seguimiento inválido", err.Message)

	input = &models.CreateFollowupInput{
		LeaderID:     1,
		FollowupDate: "2025-03-09",
		Topics:       []models.TopicRatingInput{{TopicID: "t1", Rating: 6}},
	}
	err = validateCreateFollowupInput(input)
	require.NotNil(t, err)
	assert.Equal(t, "La calificación debe estar entre 1 y 5", err.Message)

	// Sin tipo se asume acompañamiento
	input = &models.CreateFollowupInput{LeaderID: 1, FollowupDate: "2025-03-09"}
	require.Nil(t, validateCreateFollowupInput(input))
	assert.Equal(t, models.FollowupTypeAcompanamiento, input.Type)
}

func TestCreateFollowupRechazaFormularioIncompleto(t *testing.T) {
	// La validación corta antes de cualquier acceso a la base de datos
	router := gin.New()
	router.POST("/api/followups", CreateFollowup)

	body := bytes.NewBufferString(`{"followup_date": "2025-03-09"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/followups", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Debes seleccionar un líder")
}

func TestDatastoreAccionInvalida(t *testing.T) {
	router := gin.New()
	router.POST("/api/datastore", DatastorePost)

	body := bytes.NewBufferString(`{"action": "noExiste"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/datastore", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Acción inválida")
}

func TestDatastoreEliminarHistorialExigeToken(t *testing.T) {
	router := gin.New()
	router.POST("/api/datastore", DatastorePost)

	body := bytes.NewBufferString(`{"action": "deleteAllFollowups"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/datastore", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
