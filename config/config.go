package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "5000"
	DefaultTokenExpiryHours = 24
	DefaultGeminiModel      = "gemini-2.0-flash-exp"
	DefaultUploadDir        = "uploads"
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	TokenSecret      string
	TokenExpiryHours int
	GeminiAPIKey     string
	GeminiModel      string
	UploadDir        string
}

func Load() *Config {
	env := getEnv("ENV", "development")

	// Process env vars win over file values; godotenv never overwrites.
	envFile := filepath.Join("config", ".env."+fileSuffix(env))
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found, relying on environment", envFile)
	}

	return &Config{
		Env:              env,
		Port:             getEnv("PORT", DefaultPort),
		DBURL:            mustGetEnv("DB_URL"),
		TokenSecret:      mustGetEnv("JWT_SECRET"),
		TokenExpiryHours: getEnvAsInt("TOKEN_EXPIRY_HOURS", DefaultTokenExpiryHours),
		GeminiAPIKey:     mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", DefaultGeminiModel),
		UploadDir:        getEnv("UPLOAD_DIR", DefaultUploadDir),
	}
}

func fileSuffix(env string) string {
	if env == "production" {
		return "prod"
	}
	return "dev"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
