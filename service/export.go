package service

import (
	"fmt"
	"strings"

	"github.com/MarcelaRV/seguimientos_end/models"
)

// Sheet hoja tabular con nombre, encabezados y filas en orden estable.
// Los anchos de columna son solo una sugerencia de formato.
type Sheet struct {
	Name      string
	Headers   []string
	Rows      [][]interface{}
	ColWidths []float64
}

// MeanRating devuelve el promedio de calificaciones con dos decimales.
// Un seguimiento sin temas produce cadena vacía, nunca cero ni NaN.
func MeanRating(topics []models.TopicScore) string {
	if len(topics) == 0 {
		return ""
	}
	sum := 0
	for _, t := range topics {
		sum += t.Rating
	}
	return fmt.Sprintf("%.2f", float64(sum)/float64(len(topics)))
}

// BuildFlatExport construye las hojas del exporte plano: una fila por
// seguimiento en "Seguimientos" y una fila por calificación en "Temas".
// El orden de las filas es el orden de entrada.
func BuildFlatExport(followups []models.FollowupWithTopics, ratings []models.FollowupTopic, topics []models.Topic) []Sheet {
	topicNames := make(map[string]string, len(topics))
	for _, t := range topics {
		topicNames[t.ID] = t.Name
	}

	followupSheet := Sheet{
		Name: "Seguimientos",
		Headers: []string{
			"ID Líder", "Nombre del Líder", "ID Seguimiento", "Número de Secuencia",
			"Tipo de Seguimiento", "Fecha y Hora", "Fecha", "Hora", "Próxima Fecha",
			"Días hasta próximo seguimiento", "Observaciones", "Acuerdos",
			"Cantidad de Temas", "Promedio Calificaciones",
		},
		ColWidths: []float64{10, 30, 25, 10, 20, 22, 12, 10, 22, 15, 50, 50, 10, 12},
	}

	for _, f := range followups {
		nextDate := ""
		dayGap := interface{}("")
		if f.NextFollowupDate != nil {
			nextDate = FormatTimestamp(*f.NextFollowupDate)
			dayGap = DaysBetween(f.FollowupDate, *f.NextFollowupDate)
		}

		followupSheet.Rows = append(followupSheet.Rows, []interface{}{
			f.LeaderID,
			f.LeaderName,
			f.ID.Hex(),
			f.SequenceNumber,
			models.FollowupTypeLabel(f.Type),
			FormatTimestamp(f.FollowupDate),
			FormatShortDate(f.FollowupDate),
			FormatTimeOfDay(f.FollowupDate),
			nextDate,
			dayGap,
			f.Observations,
			f.Agreements,
			len(f.Topics),
			MeanRating(f.Topics),
		})
	}

	topicSheet := Sheet{
		Name: "Temas",
		Headers: []string{
			"ID Seguimiento", "Fecha y Hora", "ID Líder", "Nombre del Líder",
			"ID Tema", "Nombre del Tema", "Calificación",
		},
		ColWidths: []float64{25, 22, 10, 30, 15, 30, 12},
	}

	for _, f := range followups {
		for _, r := range ratings {
			if r.FollowupID != f.ID {
				continue
			}
			topicSheet.Rows = append(topicSheet.Rows, []interface{}{
				f.ID.Hex(),
				FormatTimestamp(f.FollowupDate),
				f.LeaderID,
				f.LeaderName,
				r.TopicID,
				topicNames[r.TopicID],
				r.Rating,
			})
		}
	}

	return []Sheet{followupSheet, topicSheet}
}

// BuildStarExport construye las hojas del exporte en esquema estrella para
// Power BI: tablas de dimensión de líderes, temas y fechas, y tablas de
// hechos de seguimientos y calificaciones, precedidas por una hoja de
// instrucciones. El orden de tablas y filas es estable.
func BuildStarExport(followups []models.FollowupWithTopics, leaders []models.Leader, topics []models.Topic, ratings []models.FollowupTopic) []Sheet {
	instructions := Sheet{
		Name:    "Instrucciones",
		Headers: []string{"Instrucciones de Uso"},
		Rows: [][]interface{}{{strings.Join([]string{
			"1. Este archivo está optimizado para Power BI",
			"2. Relaciones recomendadas:",
			"   - Fact_Seguimientos[ID_Lider] → Dim_Lideres[ID_Lider]",
			"   - Fact_Seguimientos[Fecha_Seguimiento] → Dim_Fechas[Fecha_Completa]",
			"   - Fact_Calificaciones[ID_Seguimiento] → Fact_Seguimientos[ID_Seguimiento]",
			"   - Fact_Calificaciones[ID_Tema] → Dim_Temas[ID_Tema]",
			"3. Medidas sugeridas:",
			"   - Promedio de Calificaciones = AVERAGE(Fact_Calificaciones[Calificacion])",
			"   - Total de Seguimientos = COUNT(Fact_Seguimientos[ID_Seguimiento])",
			"   - Días Entre Seguimientos = AVERAGE(Fact_Seguimientos[Dias_Entre_Seguimientos])",
			"4. Las fechas incluyen hora exacta para mayor precisión",
			"5. Usar Dim_Fechas para análisis temporales detallados",
		}, "\n")}},
		ColWidths: []float64{80},
	}

	dimLeaders := Sheet{
		Name:      "Dim_Lideres",
		Headers:   []string{"ID_Lider", "Nombre_Lider"},
		ColWidths: []float64{10, 30},
	}
	for _, l := range leaders {
		dimLeaders.Rows = append(dimLeaders.Rows, []interface{}{l.ID, l.Name})
	}

	dimTopics := Sheet{
		Name:      "Dim_Temas",
		Headers:   []string{"ID_Tema", "Nombre_Tema"},
		ColWidths: []float64{15, 30},
	}
	for _, t := range topics {
		dimTopics.Rows = append(dimTopics.Rows, []interface{}{t.ID, t.Name})
	}

	// Una fila por valor distinto de fecha de seguimiento, en orden de aparición
	dimDates := Sheet{
		Name: "Dim_Fechas",
		Headers: []string{
			"Fecha_Clave", "Fecha_Completa", "Fecha_Corta", "Hora", "Año",
			"Mes_Numero", "Mes", "Trimestre", "Año_Mes", "Dia_Semana", "Dia_Mes",
		},
		ColWidths: []float64{22, 22, 12, 10, 8, 10, 12, 10, 16, 12, 8},
	}
	seen := make(map[string]bool)
	for _, f := range followups {
		key := FormatTimestamp(f.FollowupDate)
		if seen[key] {
			continue
		}
		seen[key] = true
		dimDates.Rows = append(dimDates.Rows, []interface{}{
			key,
			key,
			FormatShortDate(f.FollowupDate),
			FormatTimeOfDay(f.FollowupDate),
			fmt.Sprintf("%d", f.FollowupDate.Year()),
			f.FollowupDate.Format("01"),
			MonthName(f.FollowupDate),
			QuarterLabel(f.FollowupDate),
			YearMonthLabel(f.FollowupDate),
			WeekdayName(f.FollowupDate),
			f.FollowupDate.Format("02"),
		})
	}

	factFollowups := Sheet{
		Name: "Fact_Seguimientos",
		Headers: []string{
			"ID_Seguimiento", "ID_Lider", "Fecha_Seguimiento", "Fecha_Proximo",
			"Numero_Secuencia", "Tipo_Seguimiento", "Observaciones", "Acuerdos",
			"ID_Seguimiento_Anterior", "Dias_Entre_Seguimientos",
		},
		ColWidths: []float64{25, 10, 22, 22, 10, 20, 50, 50, 25, 15},
	}
	for _, f := range followups {
		nextDate := ""
		dayGap := interface{}("")
		if f.NextFollowupDate != nil {
			nextDate = FormatTimestamp(*f.NextFollowupDate)
			dayGap = DaysBetween(f.FollowupDate, *f.NextFollowupDate)
		}
		previousID := ""
		if f.PreviousFollowupID != nil {
			previousID = f.PreviousFollowupID.Hex()
		}
		factFollowups.Rows = append(factFollowups.Rows, []interface{}{
			f.ID.Hex(),
			f.LeaderID,
			FormatTimestamp(f.FollowupDate),
			nextDate,
			f.SequenceNumber,
			models.FollowupTypeLabel(f.Type),
			f.Observations,
			f.Agreements,
			previousID,
			dayGap,
		})
	}

	factRatings := Sheet{
		Name:      "Fact_Calificaciones",
		Headers:   []string{"ID_Seguimiento", "ID_Tema", "Calificacion", "Calificacion_Texto"},
		ColWidths: []float64{25, 15, 12, 14},
	}
	for _, r := range ratings {
		factRatings.Rows = append(factRatings.Rows, []interface{}{
			r.FollowupID.Hex(),
			r.TopicID,
			r.Rating,
			fmt.Sprintf("%d de 5", r.Rating),
		})
	}

	return []Sheet{instructions, dimLeaders, dimTopics, dimDates, factFollowups, factRatings}
}
