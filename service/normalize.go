package service

import (
	"github.com/MarcelaRV/seguimientos_end/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildFollowupViews combina seguimientos, filas de calificación, temas y
// líderes en registros planos. Los identificadores internos de la tabla de
// unión se descartan: cada seguimiento queda con una lista de pares
// {nombre, calificación} en el orden de entrada de las calificaciones.
// Función pura: el mismo conjunto de entradas produce siempre el mismo resultado.
func BuildFollowupViews(followups []models.Followup, ratings []models.FollowupTopic, topics []models.Topic, leaders []models.Leader) []models.FollowupWithTopics {
	topicNames := make(map[string]string, len(topics))
	for _, t := range topics {
		topicNames[t.ID] = t.Name
	}

	leaderNames := make(map[int64]string, len(leaders))
	for _, l := range leaders {
		leaderNames[l.ID] = l.Name
	}

	scores := make(map[primitive.ObjectID][]models.TopicScore, len(followups))
	for _, r := range ratings {
		scores[r.FollowupID] = append(scores[r.FollowupID], models.TopicScore{
			Name:   topicNames[r.TopicID],
			Rating: r.Rating,
		})
	}

	views := make([]models.FollowupWithTopics, 0, len(followups))
	for _, f := range followups {
		topicScores := scores[f.ID]
		if topicScores == nil {
			topicScores = []models.TopicScore{}
		}
		views = append(views, models.FollowupWithTopics{
			Followup:   f,
			LeaderName: leaderNames[f.LeaderID],
			Topics:     topicScores,
		})
	}

	return views
}
