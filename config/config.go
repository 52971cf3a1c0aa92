package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config configuración de la aplicación
type Config struct {
	Port     int
	MongoURI string
	MongoDB  string
	JWTKey   string
	Debug    bool
}

// LoadConfig carga la configuración desde variables de entorno
func LoadConfig() *Config {
	// Cargar .env si existe (solo entornos locales)
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	return &Config{
		Port:     port,
		MongoURI: getEnv("MONGO_URI", "mongodb://127.0.0.1:27017/seguimientos"),
		MongoDB:  getEnv("MONGO_DB", "seguimientos"),
		JWTKey:   getEnv("JWT_KEY", "clave-secreta-de-desarrollo"), // reemplazar en producción
		Debug:    getEnv("GIN_MODE", "debug") == "debug",
	}
}

// getEnv obtiene una variable de entorno, o el valor por defecto si no existe
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
