package service

import (
	"testing"
	"time"

	"github.com/MarcelaRV/seguimientos_end/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildLeaderSummary(t *testing.T) {
	date := time.Date(2025, time.February, 3, 12, 0, 0, 0, time.UTC)
	leader := models.Leader{ID: 1, Name: "Ana Torres"}

	followups := []models.FollowupWithTopics{
		fixtureView(1, "Ana Torres", 1, date, []models.TopicScore{
			{Name: "Comunicación", Rating: 3},
			{Name: "Delegación", Rating: 4},
		}),
		fixtureView(1, "Ana Torres", 2, date.AddDate(0, 0, 7), []models.TopicScore{
			{Name: "Comunicación", Rating: 5},
		}),
	}

	summary := BuildLeaderSummary(leader, followups)

	assert.Equal(t, leader, summary.Leader)
	assert.Equal(t, 2, summary.TotalFollowups)
	// Promedio sobre todas las calificaciones de todos los seguimientos
	assert.Equal(t, "4.00", summary.AvgRating)
	assert.Equal(t, GenerateSynthesis(2, "4.00"), summary.Synthesis)
	assert.Len(t, summary.Followups, 2)
}

func TestBuildLeaderSummarySinSeguimientos(t *testing.T) {
	// "Ana" sin seguimientos: promedio N/A y texto fijo de no iniciado
	leader := models.Leader{ID: 1, Name: "Ana"}
	summary := BuildLeaderSummary(leader, []models.FollowupWithTopics{})

	assert.Equal(t, 0, summary.TotalFollowups)
	assert.Equal(t, "N/A", summary.AvgRating)
	assert.Equal(t, SynthesisNotStarted, summary.Synthesis)
}

func TestBuildLeaderSummarySinCalificaciones(t *testing.T) {
	// Con seguimientos pero sin temas calificados el promedio sigue siendo N/A
	date := time.Date(2025, time.February, 3, 12, 0, 0, 0, time.UTC)
	leader := models.Leader{ID: 1, Name: "Ana Torres"}

	summary := BuildLeaderSummary(leader, []models.FollowupWithTopics{
		fixtureView(1, "Ana Torres", 1, date, nil),
	})

	assert.Equal(t, 1, summary.TotalFollowups)
	assert.Equal(t, "N/A", summary.AvgRating)
}
