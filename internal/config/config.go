package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Storage  StorageConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	SessionEventTopic  string
}

type DatabaseConfig struct {
	Connection string
}

type StorageConfig struct {
	SupabaseURL            string
	Bucket                 string
	SignedURLExpirySeconds int
}

type APIKeys struct {
	OpenAI             string
	SupabaseServiceKey string
}

type AIConfig struct {
	LLMProvider   string // "openai" or "ollama"
	LLMModel      string // e.g. "gpt-4o", "llama3"
	OllamaBaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			SessionEventTopic:  getEnv("SESSION_EVENT_TOPIC_NAME", "STUDY_SESSION_CREATED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Storage: StorageConfig{
			SupabaseURL:            getEnv("SUPABASE_URL", ""),
			Bucket:                 getEnv("SUPABASE_STORAGE_BUCKET", "project-files"),
			SignedURLExpirySeconds: getEnvAsInt("SIGNED_URL_EXPIRY_SECONDS", 600),
		},
		Keys: APIKeys{
			OpenAI:             getEnv("OPENAI_API_KEY", ""),
			SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "openai"),
			LLMModel:      getEnv("LLM_MODEL", "gpt-4o"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
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
