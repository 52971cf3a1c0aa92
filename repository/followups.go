package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MarcelaRV/seguimientos_end/models"
	"github.com/MarcelaRV/seguimientos_end/service"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListLeaders devuelve todos los líderes ordenados por nombre
func ListLeaders(ctx context.Context) ([]models.Leader, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := Collection(LeadersCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	leaders := []models.Leader{}
	if err := cursor.All(ctx, &leaders); err != nil {
		return nil, err
	}
	return leaders, nil
}

// GetLeader devuelve un líder por su identificador
func GetLeader(ctx context.Context, id int64) (*models.Leader, error) {
	var leader models.Leader
	err := Collection(LeadersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&leader)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("El líder")
		}
		return nil, err
	}
	return &leader, nil
}

// InsertLeaders inserta líderes en bloque; si hay duplicados reintenta uno por uno
func InsertLeaders(ctx context.Context, names []string) ([]models.Leader, error) {
	coll := Collection(LeadersCollection)

	// Asignar identificadores consecutivos a partir del máximo actual
	var last models.Leader
	nextID := int64(1)
	err := coll.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.M{"_id": -1})).Decode(&last)
	if err == nil {
		nextID = last.ID + 1
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	leaders := make([]models.Leader, 0, len(names))
	docs := make([]interface{}, 0, len(names))
	for i, name := range names {
		leader := models.Leader{ID: nextID + int64(i), Name: name}
		leaders = append(leaders, leader)
		docs = append(docs, leader)
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
		// Insertar uno por uno, omitiendo los que ya existen
		inserted := []models.Leader{}
		for _, leader := range leaders {
			if _, err := coll.InsertOne(ctx, leader); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					continue
				}
				return nil, err
			}
			inserted = append(inserted, leader)
		}
		return inserted, nil
	}

	return leaders, nil
}

// ListTopics devuelve todos los temas ordenados por nombre
func ListTopics(ctx context.Context) ([]models.Topic, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := Collection(TopicsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	topics := []models.Topic{}
	if err := cursor.All(ctx, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// MaxSequence devuelve el número de secuencia máximo de un conjunto de seguimientos
func MaxSequence(followups []models.Followup) int {
	max := 0
	for _, f := range followups {
		if f.SequenceNumber > max {
			max = f.SequenceNumber
		}
	}
	return max
}

// maxSequenceForLeader consulta el número de secuencia máximo registrado para un líder
func maxSequenceForLeader(ctx context.Context, leaderID int64) (int, error) {
	var last models.Followup
	opts := options.FindOne().SetSort(bson.M{"sequence_number": -1})
	err := Collection(FollowupsCollection).FindOne(ctx, bson.M{"leader_id": leaderID}, opts).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}
	return last.SequenceNumber, nil
}

// NextSequenceNumber asigna de forma atómica el siguiente número de secuencia
// para un líder. El contador se siembra con el máximo existente, de modo que
// para datos previos se conserva la propiedad max+1. Los contadores son
// independientes entre líderes.
func NextSequenceNumber(ctx context.Context, leaderID int64) (int, error) {
	counters := Collection(CountersCollection)

	err := counters.FindOne(ctx, bson.M{"_id": leaderID}).Err()
	if err == mongo.ErrNoDocuments {
		max, err := maxSequenceForLeader(ctx, leaderID)
		if err != nil {
			return 0, err
		}
		if _, err := counters.InsertOne(ctx, bson.M{"_id": leaderID, "seq": max}); err != nil {
			// Otro escritor sembró el contador primero; el $inc posterior sigue siendo válido
			if !mongo.IsDuplicateKeyError(err) {
				return 0, err
			}
		}
	} else if err != nil {
		return 0, err
	}

	var doc struct {
		Seq int `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": leaderID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}

	utils.LogDbOperation("nextSequence", CountersCollection, leaderID, doc.Seq)
	return doc.Seq, nil
}

// CreateFollowupWithRatings inserta un seguimiento y sus calificaciones en una
// sola transacción. El número de secuencia se asigna dentro de la transacción;
// si la inserción de calificaciones falla, no queda ningún seguimiento parcial.
func CreateFollowupWithRatings(ctx context.Context, followup models.Followup, ratings []models.FollowupTopic) (*models.Followup, error) {
	session, err := Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("error iniciando sesión de MongoDB: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		seq, err := NextSequenceNumber(sc, followup.LeaderID)
		if err != nil {
			return nil, err
		}

		followup.SequenceNumber = seq
		followup.CreatedAt = time.Now()

		insertResult, err := Collection(FollowupsCollection).InsertOne(sc, followup)
		if err != nil {
			return nil, err
		}
		followup.ID = insertResult.InsertedID.(primitive.ObjectID)

		if len(ratings) > 0 {
			docs := make([]interface{}, 0, len(ratings))
			for _, r := range ratings {
				r.FollowupID = followup.ID
				docs = append(docs, r)
			}
			if _, err := Collection(FollowupTopicsCollection).InsertMany(sc, docs); err != nil {
				return nil, err
			}
		}

		return &followup, nil
	})
	if err != nil {
		return nil, err
	}

	created := result.(*models.Followup)
	utils.LogInfo(map[string]interface{}{
		"followupId":     created.ID.Hex(),
		"leaderId":       created.LeaderID,
		"sequenceNumber": created.SequenceNumber,
		"ratingCount":    len(ratings),
	}, "Seguimiento creado")

	return created, nil
}

// InsertFollowup inserta un seguimiento con los datos recibidos tal cual.
// Se conserva para la ruta de compatibilidad con la API original, que envía
// el número de secuencia calculado por el cliente; si no lo envía, se asigna
// de forma atómica. El contador se ajusta con $max para no quedar por detrás
// de una secuencia impuesta por el cliente.
func InsertFollowup(ctx context.Context, followup models.Followup) (*models.Followup, error) {
	if followup.SequenceNumber <= 0 {
		seq, err := NextSequenceNumber(ctx, followup.LeaderID)
		if err != nil {
			return nil, err
		}
		followup.SequenceNumber = seq
	} else {
		opts := options.Update().SetUpsert(true)
		_, err := Collection(CountersCollection).UpdateOne(
			ctx,
			bson.M{"_id": followup.LeaderID},
			bson.M{"$max": bson.M{"seq": followup.SequenceNumber}},
			opts,
		)
		if err != nil {
			return nil, err
		}
	}

	followup.CreatedAt = time.Now()
	result, err := Collection(FollowupsCollection).InsertOne(ctx, followup)
	if err != nil {
		return nil, err
	}
	followup.ID = result.InsertedID.(primitive.ObjectID)

	return &followup, nil
}

// AttachRatings inserta calificaciones para un seguimiento ya existente.
// Se conserva para la ruta de compatibilidad con la API original.
func AttachRatings(ctx context.Context, followupID primitive.ObjectID, ratings []models.FollowupTopic) error {
	if len(ratings) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(ratings))
	for _, r := range ratings {
		r.FollowupID = followupID
		docs = append(docs, r)
	}

	_, err := Collection(FollowupTopicsCollection).InsertMany(ctx, docs)
	return err
}

// GetPreviousFollowup devuelve los datos de un seguimiento para precargar el
// formulario al continuar una cadena
func GetPreviousFollowup(ctx context.Context, id primitive.ObjectID) (*models.PreviousFollowupData, error) {
	var followup models.Followup
	err := Collection(FollowupsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&followup)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("El seguimiento")
		}
		return nil, err
	}

	ratings, err := ratingsForFollowups(ctx, []primitive.ObjectID{id})
	if err != nil {
		return nil, err
	}

	topics, err := ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	topicNames := make(map[string]string, len(topics))
	for _, t := range topics {
		topicNames[t.ID] = t.Name
	}

	data := &models.PreviousFollowupData{
		LeaderID:     followup.LeaderID,
		Type:         followup.Type,
		Observations: followup.Observations,
		Agreements:   followup.Agreements,
		TopicRatings: []models.PreviousTopicRating{},
	}
	for _, r := range ratings {
		data.TopicRatings = append(data.TopicRatings, models.PreviousTopicRating{
			TopicID:   r.TopicID,
			TopicName: topicNames[r.TopicID],
			Rating:    r.Rating,
		})
	}

	return data, nil
}

// ListFollowupsByLeader devuelve los seguimientos de un líder, los más
// recientes primero, con sus temas aplanados
func ListFollowupsByLeader(ctx context.Context, leaderID int64) ([]models.FollowupWithTopics, error) {
	opts := options.Find().SetSort(bson.M{"followup_date": -1})
	return listFollowupViews(ctx, bson.M{"leader_id": leaderID}, opts)
}

// ListAllFollowups devuelve todos los seguimientos, los más antiguos primero
// (orden requerido por el exporte masivo)
func ListAllFollowups(ctx context.Context) ([]models.FollowupWithTopics, error) {
	opts := options.Find().SetSort(bson.M{"followup_date": 1})
	return listFollowupViews(ctx, bson.M{}, opts)
}

// listFollowupViews consulta seguimientos con el filtro dado y les adjunta
// líder y calificaciones
func listFollowupViews(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.FollowupWithTopics, error) {
	cursor, err := Collection(FollowupsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	followups := []models.Followup{}
	if err := cursor.All(ctx, &followups); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(followups))
	for _, f := range followups {
		ids = append(ids, f.ID)
	}

	ratings, err := ratingsForFollowups(ctx, ids)
	if err != nil {
		return nil, err
	}

	topics, err := ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	leaders, err := ListLeaders(ctx)
	if err != nil {
		return nil, err
	}

	return service.BuildFollowupViews(followups, ratings, topics, leaders), nil
}

// ratingsForFollowups devuelve las filas de calificación de los seguimientos indicados
func ratingsForFollowups(ctx context.Context, ids []primitive.ObjectID) ([]models.FollowupTopic, error) {
	if len(ids) == 0 {
		return []models.FollowupTopic{}, nil
	}

	cursor, err := Collection(FollowupTopicsCollection).Find(ctx, bson.M{"followup_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ratings := []models.FollowupTopic{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListAllRatings devuelve todas las filas de calificación (para el exporte de esquema estrella)
func ListAllRatings(ctx context.Context) ([]models.FollowupTopic, error) {
	cursor, err := Collection(FollowupTopicsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ratings := []models.FollowupTopic{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// DeleteAllFollowupData elimina todas las calificaciones, seguimientos y
// contadores. Los líderes y los temas no se tocan.
func DeleteAllFollowupData(ctx context.Context) error {
	_, err := ExecuteDbOperation(func() (interface{}, error) {
		// Primero las calificaciones, luego los seguimientos, por último los contadores
		if _, err := Collection(FollowupTopicsCollection).DeleteMany(ctx, bson.M{}); err != nil {
			return nil, err
		}
		if _, err := Collection(FollowupsCollection).DeleteMany(ctx, bson.M{}); err != nil {
			return nil, err
		}
		if _, err := Collection(CountersCollection).DeleteMany(ctx, bson.M{}); err != nil {
			return nil, err
		}
		return nil, nil
	}, 3)

	if err != nil {
		return err
	}

	utils.Logger.Info().Msg("Historial de seguimientos eliminado")
	return nil
}
