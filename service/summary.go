package service

import (
	"fmt"

	"github.com/MarcelaRV/seguimientos_end/models"
)

// BuildLeaderSummary construye el resumen derivado de un líder a partir de
// sus seguimientos. El promedio se calcula sobre todas las calificaciones de
// todos los seguimientos; sin calificaciones el promedio es "N/A". No se
// guarda en ninguna parte: se recalcula en cada petición.
func BuildLeaderSummary(leader models.Leader, followups []models.FollowupWithTopics) models.LeaderSummary {
	sum := 0
	count := 0
	for _, f := range followups {
		for _, t := range f.Topics {
			sum += t.Rating
			count++
		}
	}

	avgRating := "N/A"
	if count > 0 {
		avgRating = fmt.Sprintf("%.2f", float64(sum)/float64(count))
	}

	return models.LeaderSummary{
		Leader:         leader,
		TotalFollowups: len(followups),
		AvgRating:      avgRating,
		Synthesis:      GenerateSynthesis(len(followups), avgRating),
		Followups:      followups,
	}
}
