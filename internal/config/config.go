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
	Ai        AIConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini", "ollama" or "jina"
	OllamaBaseURL     string
	OllamaModel       string
	GeminiApiKey      string
	JinaApiKey        string
	LLMProvider       string // "ollama" or "none"
	LLMModel          string
}

type RecommendConfig struct {
	HalfLifeDays       int
	SessionTTLMinutes  int
	DefaultTopK        int
	OrderTopicName     string
	EmbedTopicName     string
	ProfileCacheTTLSec int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GeminiApiKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			JinaApiKey:        getEnv("JINA_API_KEY", ""),
			LLMProvider:       getEnv("LLM_PROVIDER", "none"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
		},
		Recommend: RecommendConfig{
			HalfLifeDays:       getEnvAsInt("RECOMMEND_HALF_LIFE_DAYS", 30),
			SessionTTLMinutes:  getEnvAsInt("SESSION_TTL_MINUTES", 60),
			DefaultTopK:        getEnvAsInt("RECOMMEND_DEFAULT_TOP_K", 6),
			OrderTopicName:     getEnv("ORDER_RECORDED_TOPIC_NAME", "ORDER_RECORDED"),
			EmbedTopicName:     getEnv("MENU_EMBED_TOPIC_NAME", "MENU_EMBED"),
			ProfileCacheTTLSec: getEnvAsInt("PROFILE_CACHE_TTL_SECONDS", 300),
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
