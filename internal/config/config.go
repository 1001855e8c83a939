package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	EventTopic         string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTLHours int
	BcryptCost    int
}

type RateLimitConfig struct {
	RequestsPerMinute int
	// BurstSize is accepted for forward compatibility but the sliding
	// window is the only admission mechanism.
	BurstSize int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			EventTopic:         getEnv("DOMAIN_EVENT_TOPIC_NAME", "DOMAIN_EVENTS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTLHours: getEnvAsInt("JWT_TTL_HOURS", 24),
			BcryptCost:    getEnvAsInt("BCRYPT_COST", 0),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
			BurstSize:         getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
