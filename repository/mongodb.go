package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MarcelaRV/seguimientos_end/models"
	"github.com/MarcelaRV/seguimientos_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// Colecciones
	LeadersCollection        = "leaders"
	TopicsCollection         = "topics"
	FollowupsCollection      = "followups"
	FollowupTopicsCollection = "followup_topics"
	CountersCollection       = "counters"
	UsersCollection          = "users"
)

var (
	client *mongo.Client
	db     *mongo.Database
	ctx    = context.Background()
)

// InitMongoDB inicializa la conexión a MongoDB
func InitMongoDB(uri, dbName string) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("error conectando a MongoDB: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("error en ping a MongoDB: %w", err)
	}

	db = client.Database(dbName)
	utils.Logger.Info().Str("database", dbName).Msg("Conectado a MongoDB")

	return nil
}

// CloseMongoDB cierra la conexión a MongoDB
func CloseMongoDB() {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("Error desconectando de MongoDB")
			return
		}
		utils.Logger.Info().Msg("Desconectado de MongoDB")
	}
}

// Client devuelve el cliente de MongoDB (necesario para sesiones)
func Client() *mongo.Client {
	return client
}

// Collection devuelve la colección con el nombre indicado
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

// ExecuteDbOperation ejecuta una operación de base de datos con reintentos
func ExecuteDbOperation(operation func() (interface{}, error), retries int) (interface{}, error) {
	if retries <= 0 {
		retries = 3
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}

		lastErr = err
		utils.Logger.Error().Err(err).Msgf("Operación de base de datos fallida, reintento (%d/%d)", i+1, retries)

		if !isRetryableError(err) {
			break
		}

		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}

	return nil, lastErr
}

// isRetryableError determina si un error admite reintento
func isRetryableError(err error) bool {
	retryableCodes := map[int]bool{
		6:     true, // HostUnreachable
		7:     true, // HostNotFound
		89:    true, // NetworkTimeout
		91:    true, // ShutdownInProgress
		189:   true, // PrimarySteppedDown
		10107: true, // NotMaster
		11600: true, // InterruptedAtShutdown
	}

	if cmdErr, ok := err.(mongo.CommandError); ok {
		return retryableCodes[int(cmdErr.Code)]
	}

	return isNetworkError(err)
}

// isNetworkError determina si un error es de red
func isNetworkError(err error) bool {
	errMsg := strings.ToLower(err.Error())
	networkErrors := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"no reachable servers",
		"timeout",
		"context deadline exceeded",
		"server selection error",
	}

	for _, ne := range networkErrors {
		if strings.Contains(errMsg, ne) {
			return true
		}
	}

	return false
}

// InitializeCollections inicializa las colecciones de la base de datos
func InitializeCollections() error {
	collections := []string{
		LeadersCollection,
		TopicsCollection,
		FollowupsCollection,
		FollowupTopicsCollection,
		CountersCollection,
		UsersCollection,
	}

	for _, collName := range collections {
		collExists, err := CollectionExists(collName)
		if err != nil {
			return fmt.Errorf("error verificando colección: %w", err)
		}

		if !collExists {
			if err := db.CreateCollection(ctx, collName); err != nil {
				return fmt.Errorf("error creando colección: %w", err)
			}
			utils.Logger.Info().Str("collection", collName).Msg("Colección creada")
		}
	}

	return nil
}

// CollectionExists verifica si una colección existe
func CollectionExists(collName string) (bool, error) {
	collections, err := db.ListCollectionNames(ctx, bson.M{"name": collName})
	if err != nil {
		return false, err
	}

	for _, name := range collections {
		if name == collName {
			return true, nil
		}
	}

	return false, nil
}

// InitializeAdminAccount crea la cuenta de administrador si no existe
func InitializeAdminAccount() error {
	usersCollection := db.Collection(UsersCollection)

	count, err := usersCollection.CountDocuments(ctx, bson.M{"role": models.UserRoleADMIN})
	if err != nil {
		return fmt.Errorf("error verificando cuenta de administrador: %w", err)
	}

	if count > 0 {
		utils.Logger.Info().Msg("La cuenta de administrador ya existe, se omite la creación")
		return nil
	}

	adminUser := models.User{
		Username:  "admin",
		Password:  utils.HashPassword("admin123"),
		Role:      models.UserRoleADMIN,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := usersCollection.InsertOne(ctx, adminUser); err != nil {
		return fmt.Errorf("error creando cuenta de administrador: %w", err)
	}

	utils.Logger.Info().Msg("Cuenta de administrador creada")
	return nil
}

// GetDatabaseStatus devuelve el conteo de documentos por colección
func GetDatabaseStatus() (map[string]interface{}, error) {
	collections := []string{
		LeadersCollection,
		TopicsCollection,
		FollowupsCollection,
		FollowupTopicsCollection,
		CountersCollection,
		UsersCollection,
	}

	result := make(map[string]interface{})

	for _, collName := range collections {
		coll := db.Collection(collName)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.Logger.Error().Err(err).Str("collection", collName).Msg("Error contando documentos")
			result[collName] = map[string]interface{}{
				"count": 0,
				"error": err.Error(),
			}
			continue
		}
		result[collName] = map[string]interface{}{
			"count": count,
		}
	}

	return result, nil
}
