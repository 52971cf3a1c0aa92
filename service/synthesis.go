package service

import (
	"fmt"
	"strconv"
	"strings"
)

// PlannedFollowups meta de seguimientos del plan de acompañamiento
const PlannedFollowups = 10

// SynthesisNotStarted mensaje fijo cuando no hay seguimientos registrados
const SynthesisNotStarted = "El proceso de acompañamiento aún no ha iniciado: no hay seguimientos registrados para este líder."

// GenerateSynthesis genera el resumen narrativo de progreso de un líder.
// Es una tabla de decisión fija: las mismas entradas producen siempre el
// mismo texto, byte a byte.
func GenerateSynthesis(totalFollowups int, avgRating string) string {
	if totalFollowups <= 0 {
		return SynthesisNotStarted
	}

	progress := float64(totalFollowups) / float64(PlannedFollowups) * 100

	sentences := []string{}

	// Frase de apertura según el avance del plan
	switch {
	case progress >= 100:
		sentences = append(sentences, "El plan de acompañamiento se ha completado: se registraron todos los seguimientos previstos.")
	case progress >= 70:
		sentences = append(sentences, "El plan de acompañamiento está muy avanzado, con la mayoría de los seguimientos previstos ya realizados.")
	case progress >= 50:
		sentences = append(sentences, "El plan de acompañamiento supera la mitad del recorrido previsto.")
	case progress >= 30:
		sentences = append(sentences, "El plan de acompañamiento está en progreso, aunque todavía en una etapa intermedia.")
	default:
		sentences = append(sentences, "El plan de acompañamiento apenas comienza; se han registrado los primeros seguimientos.")
	}

	// Frase de calificaciones; se omite si el promedio no es numérico
	if avg, err := strconv.ParseFloat(avgRating, 64); err == nil {
		switch {
		case avg >= 4.5:
			sentences = append(sentences, fmt.Sprintf("Las calificaciones promedio son sobresalientes (%s de 5), reflejo de un desempeño excepcional en los temas trabajados.", avgRating))
		case avg >= 4.0:
			sentences = append(sentences, fmt.Sprintf("Las calificaciones promedio son muy buenas (%s de 5), con un desempeño consistente en los temas trabajados.", avgRating))
		case avg >= 3.5:
			sentences = append(sentences, fmt.Sprintf("Las calificaciones promedio son buenas (%s de 5), con oportunidades puntuales de mejora.", avgRating))
		case avg >= 3.0:
			sentences = append(sentences, fmt.Sprintf("Las calificaciones promedio son aceptables (%s de 5); conviene reforzar los temas con menor avance.", avgRating))
		default:
			sentences = append(sentences, fmt.Sprintf("Las calificaciones promedio son bajas (%s de 5); se recomienda revisar el plan de trabajo con el líder.", avgRating))
		}
	}

	// Recomendación de cierre según el avance
	switch {
	case progress >= 100:
		sentences = append(sentences, "Se recomienda cerrar el ciclo con una sesión de retroalimentación final y definir el siguiente plan de desarrollo.")
	case progress >= 50:
		sentences = append(sentences, "Se recomienda mantener el ritmo actual de seguimientos para completar el plan.")
	default:
		sentences = append(sentences, "Se recomienda agendar seguimientos con mayor frecuencia para avanzar en el plan.")
	}

	return strings.Join(sentences, " ")
}
