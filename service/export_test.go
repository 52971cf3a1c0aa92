package service

import (
	"testing"
	"time"

	"github.com/MarcelaRV/seguimientos_end/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func fixtureView(leaderID int64, leaderName string, seq int, date time.Time, topics []models.TopicScore) models.FollowupWithTopics {
	return models.FollowupWithTopics{
		Followup: models.Followup{
			ID:             primitive.NewObjectID(),
			LeaderID:       leaderID,
			Type:           models.FollowupTypeAcompanamiento,
			FollowupDate:   date,
			SequenceNumber: seq,
		},
		LeaderName: leaderName,
		Topics:     topics,
	}
}

func TestMeanRating(t *testing.T) {
	scores := []models.TopicScore{
		{Name: "Comunicación", Rating: 3},
		{Name: "Delegación", Rating: 4},
		{Name: "Escucha", Rating: 5},
	}
	assert.Equal(t, "4.00", MeanRating(scores))

	// Sin temas el promedio es cadena vacía, nunca "NaN" ni "0.00"
	assert.Equal(t, "", MeanRating(nil))
	assert.Equal(t, "", MeanRating([]models.TopicScore{}))
}

func TestBuildFlatExport(t *testing.T) {
	date := time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)
	next := date.AddDate(0, 0, 14)

	f1 := fixtureView(1, "Ana Torres", 1, date, []models.TopicScore{
		{Name: "Comunicación", Rating: 3},
		{Name: "Delegación", Rating: 4},
	})
	f1.NextFollowupDate = &next
	f2 := fixtureView(1, "Ana Torres", 2, date.AddDate(0, 0, 7), []models.TopicScore{
		{Name: "Comunicación", Rating: 5},
	})
	f3 := fixtureView(2, "Luis Mora", 1, date, nil)

	topics := []models.Topic{{ID: "t1", Name: "Comunicación"}, {ID: "t2", Name: "Delegación"}}
	ratings := []models.FollowupTopic{
		{FollowupID: f1.ID, TopicID: "t1", Rating: 3},
		{FollowupID: f1.ID, TopicID: "t2", Rating: 4},
		{FollowupID: f2.ID, TopicID: "t1", Rating: 5},
	}

	sheets := BuildFlatExport([]models.FollowupWithTopics{f1, f2, f3}, ratings, topics)
	require.Len(t, sheets, 2)

	followupSheet := sheets[0]
	assert.Equal(t, "Seguimientos", followupSheet.Name)
	require.Len(t, followupSheet.Rows, 3)
	require.Len(t, followupSheet.ColWidths, len(followupSheet.Headers))

	// Fila de f1: tipo legible, brecha de días y promedio con dos decimales
	row := followupSheet.Rows[0]
	assert.Equal(t, "Acompañamiento", row[4])
	assert.Equal(t, "09/03/2025", row[6])
	assert.Equal(t, 14, row[9])
	assert.Equal(t, 2, row[12])
	assert.Equal(t, "3.50", row[13])

	// Sin próxima fecha la brecha queda vacía; sin temas el promedio queda vacío
	row = followupSheet.Rows[2]
	assert.Equal(t, "", row[8])
	assert.Equal(t, "", row[9])
	assert.Equal(t, 0, row[12])
	assert.Equal(t, "", row[13])

	// La hoja de temas tiene una fila por cada par (seguimiento, tema)
	topicSheet := sheets[1]
	assert.Equal(t, "Temas", topicSheet.Name)
	require.Len(t, topicSheet.Rows, 3)
	assert.Equal(t, f1.ID.Hex(), topicSheet.Rows[0][0])
	assert.Equal(t, "Comunicación", topicSheet.Rows[0][5])
	assert.Equal(t, 3, topicSheet.Rows[0][6])
	assert.Equal(t, f2.ID.Hex(), topicSheet.Rows[2][0])
}

func TestBuildFlatExportFilasDeTemas(t *testing.T) {
	// La cantidad de filas de la hoja "Temas" es la suma de temas por seguimiento
	date := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	views := []models.FollowupWithTopics{}
	ratings := []models.FollowupTopic{}
	total := 0
	for i, n := range []int{3, 0, 2, 1} {
		v := fixtureView(1, "Ana Torres", i+1, date.AddDate(0, 0, i), nil)
		for j := 0; j < n; j++ {
			ratings = append(ratings, models.FollowupTopic{FollowupID: v.ID, TopicID: "t1", Rating: 3})
		}
		views = append(views, v)
		total += n
	}

	sheets := BuildFlatExport(views, ratings, []models.Topic{{ID: "t1", Name: "Comunicación"}})
	assert.Len(t, sheets[1].Rows, total)
}

func TestBuildStarExport(t *testing.T) {
	date := time.Date(2025, time.January, 6, 12, 0, 0, 0, time.UTC)
	next := date.AddDate(0, 0, 10)

	f1 := fixtureView(1, "Ana Torres", 1, date, nil)
	f1.NextFollowupDate = &next
	f2 := fixtureView(2, "Luis Mora", 1, date, nil) // misma fecha que f1
	f3 := fixtureView(1, "Ana Torres", 2, date.AddDate(0, 0, 7), nil)
	previousID := f1.ID
	f3.PreviousFollowupID = &previousID

	leaders := []models.Leader{{ID: 1, Name: "Ana Torres"}, {ID: 2, Name: "Luis Mora"}}
	topics := []models.Topic{{ID: "t1", Name: "Comunicación"}}
	ratings := []models.FollowupTopic{
		{FollowupID: f1.ID, TopicID: "t1", Rating: 4},
		{FollowupID: f3.ID, TopicID: "t1", Rating: 5},
	}

	sheets := BuildStarExport([]models.FollowupWithTopics{f1, f2, f3}, leaders, topics, ratings)
	require.Len(t, sheets, 6)

	names := []string{}
	for _, s := range sheets {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"Instrucciones", "Dim_Lideres", "Dim_Temas", "Dim_Fechas",
		"Fact_Seguimientos", "Fact_Calificaciones",
	}, names)

	// Dim_Lideres y Dim_Temas: una fila por entidad
	assert.Len(t, sheets[1].Rows, 2)
	assert.Len(t, sheets[2].Rows, 1)

	// Dim_Fechas agrupa valores de fecha repetidos, en orden de aparición
	dimDates := sheets[3]
	require.Len(t, dimDates.Rows, 2)
	assert.Equal(t, "2025-01-06T12:00:00Z", dimDates.Rows[0][0])
	assert.Equal(t, "enero", dimDates.Rows[0][6])
	assert.Equal(t, "T1", dimDates.Rows[0][7])
	assert.Equal(t, "enero 2025", dimDates.Rows[0][8])
	assert.Equal(t, "lunes", dimDates.Rows[0][9])

	// Fact_Seguimientos: claves foráneas, brecha de días y cadena anterior
	facts := sheets[4]
	require.Len(t, facts.Rows, 3)
	assert.Equal(t, f1.ID.Hex(), facts.Rows[0][0])
	assert.Equal(t, int64(1), facts.Rows[0][1])
	assert.Equal(t, 10, facts.Rows[0][9])
	assert.Equal(t, "", facts.Rows[1][9])
	assert.Equal(t, f1.ID.Hex(), facts.Rows[2][8])

	// Fact_Calificaciones: etiqueta legible "N de 5"
	factRatings := sheets[5]
	require.Len(t, factRatings.Rows, 2)
	assert.Equal(t, 4, factRatings.Rows[0][2])
	assert.Equal(t, "4 de 5", factRatings.Rows[0][3])
}

func TestBuildStarExportEsEstable(t *testing.T) {
	date := time.Date(2025, time.April, 2, 12, 0, 0, 0, time.UTC)
	f := fixtureView(1, "Ana Torres", 1, date, nil)
	leaders := []models.Leader{{ID: 1, Name: "Ana Torres"}}
	topics := []models.Topic{{ID: "t1", Name: "Comunicación"}}
	ratings := []models.FollowupTopic{{FollowupID: f.ID, TopicID: "t1", Rating: 2}}

	first := BuildStarExport([]models.FollowupWithTopics{f}, leaders, topics, ratings)
	second := BuildStarExport([]models.FollowupWithTopics{f}, leaders, topics, ratings)

	assert.Equal(t, first, second)
}
