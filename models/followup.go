package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tipos de seguimiento
const (
	FollowupTypeAcompanamiento = "acompanamiento"
	FollowupTypeFelicitaciones = "felicitaciones"
)

// FollowupTypeLabel etiqueta legible del tipo de seguimiento
func FollowupTypeLabel(t string) string {
	if t == FollowupTypeAcompanamiento {
		return "Acompañamiento"
	}
	return "Felicitaciones"
}

// Leader líder acompañado; datos de referencia, solo lectura para la aplicación
type Leader struct {
	ID   int64  `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Topic tema de conversación calificable durante un seguimiento
type Topic struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Followup un seguimiento registrado para un líder
type Followup struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	LeaderID           int64               `bson:"leader_id" json:"leader_id"`
	Type               string              `bson:"type" json:"type"`
	Observations       string              `bson:"observations" json:"observations"`
	Agreements         string              `bson:"agreements" json:"agreements"`
	FollowupDate       time.Time           `bson:"followup_date" json:"followup_date"`
	NextFollowupDate   *time.Time          `bson:"next_followup_date,omitempty" json:"next_followup_date,omitempty"`
	SequenceNumber     int                 `bson:"sequence_number" json:"sequence_number"`
	PreviousFollowupID *primitive.ObjectID `bson:"previous_followup_id,omitempty" json:"previous_followup_id,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
}

// FollowupTopic calificación de un tema dentro de un seguimiento
type FollowupTopic struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FollowupID primitive.ObjectID `bson:"followup_id" json:"followup_id"`
	TopicID    string             `bson:"topic_id" json:"topic_id"`
	Rating     int                `bson:"rating" json:"rating"`
}

// TopicScore par (tema, calificación) aplanado para formularios y exportes
type TopicScore struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// FollowupWithTopics seguimiento con su líder y sus temas ya aplanados
type FollowupWithTopics struct {
	Followup   `bson:",inline"`
	LeaderName string       `json:"leader_name"`
	Topics     []TopicScore `json:"topics"`
}

// PreviousFollowupData datos del seguimiento anterior para continuar una cadena
type PreviousFollowupData struct {
	LeaderID     int64                 `json:"leader_id"`
	Type         string                `json:"type"`
	Observations string                `json:"observations"`
	Agreements   string                `json:"agreements"`
	TopicRatings []PreviousTopicRating `json:"topic_ratings"`
}

// PreviousTopicRating calificación previa con el identificador del tema
type PreviousTopicRating struct {
	TopicID   string `json:"topic_id"`
	TopicName string `json:"topic_name"`
	Rating    int    `json:"rating"`
}

// LeaderSummary resumen derivado de un líder; se recalcula en cada petición
type LeaderSummary struct {
	Leader         Leader               `json:"leader"`
	TotalFollowups int                  `json:"total_followups"`
	AvgRating      string               `json:"avg_rating"`
	Synthesis      string               `json:"synthesis"`
	Followups      []FollowupWithTopics `json:"followups"`
}

// TopicRatingInput calificación de un tema en el formulario de creación
type TopicRatingInput struct {
	TopicID string `json:"topic_id" binding:"required"`
	Rating  int    `json:"rating"`
}

// CreateFollowupInput datos del formulario de nuevo seguimiento
type CreateFollowupInput struct {
	LeaderID           int64              `json:"leader_id"`
	Type               string             `json:"type"`
	Observations       string             `json:"observations"`
	Agreements         string             `json:"agreements"`
	FollowupDate       string             `json:"followup_date"`
	NextFollowupDate   string             `json:"next_followup_date"`
	PreviousFollowupID string             `json:"previous_followup_id"`
	Topics             []TopicRatingInput `json:"topics"`
}
