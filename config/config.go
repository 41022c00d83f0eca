package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the server
type Config struct {
	Port          string
	MongoURI      string
	Database      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	SessionSecret string
	UploadDir     string
	LogLevel      string
}

// LoadConfig reads configuration from a .env file (if present) and the
// environment, falling back to development defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables or defaults")
	}

	return &Config{
		Port:          getEnv("PORT", ":8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017/"),
		Database:      getEnv("MONGO_DATABASE", "ecommerce"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		SessionSecret: getEnv("SESSION_SECRET", "secretKeyAbc123"),
		UploadDir:     getEnv("UPLOAD_DIR", "./public/uploads"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Warning: %s is not a number, using default %d\n", key, fallback)
	}
	return fallback
}
