package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
// It is immutable after LoadConfig returns.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	DBMaxConns  int

	JWTSecret string
	TokenTTL  time.Duration

	// Model gateway selection. Provider names: openai, google, huggingface.
	VisionProvider string
	VisionModel    string
	VisionTimeout  time.Duration

	LanguageProvider string
	LanguageModel    string
	LanguageTimeout  time.Duration

	LLMTemperature float64
	LLMMaxTokens   int

	OpenAIAPIKey       string
	OpenAIBaseURL      string
	GoogleAPIKey       string
	GoogleBaseURL      string
	HuggingFaceAPIKey  string
	HuggingFaceBaseURL string

	// Blob storage. Provider: local or s3.
	StorageProvider string
	StoragePath     string
	MinioEndpoint   string
	MinioAccessKey  string
	MinioSecretKey  string
	MinioBucket     string
	MinioUseSSL     bool

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int

	CORSAllowedOrigins []string
	MaxUploadBytes     int64
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 10),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  time.Minute * time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60)),

		VisionProvider: getEnv("VISION_MODEL_PROVIDER", "openai"),
		VisionModel:    getEnv("VISION_MODEL_NAME", "gpt-4o"),
		VisionTimeout:  time.Second * time.Duration(getEnvInt("VISION_TIMEOUT_SECONDS", 60)),

		LanguageProvider: getEnv("LLM_PROVIDER", "openai"),
		LanguageModel:    getEnv("LLM_MODEL_NAME", "gpt-4o-mini"),
		LanguageTimeout:  time.Second * time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 30)),

		LLMTemperature: getEnvFloat("LLM_TEMPERATURE", 0.7),
		LLMMaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1000),

		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GoogleAPIKey:       os.Getenv("GOOGLE_API_KEY"),
		GoogleBaseURL:      getEnv("GOOGLE_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		HuggingFaceAPIKey:  os.Getenv("HUGGINGFACE_API_KEY"),
		HuggingFaceBaseURL: getEnv("HUGGINGFACE_BASE_URL", "https://api-inference.huggingface.co"),

		StorageProvider: getEnv("STORAGE_PROVIDER", "local"),
		StoragePath:     getEnv("STORAGE_PATH", "./storage"),
		MinioEndpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:  os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:  os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:     getEnv("MINIO_BUCKET", "visionassist"),
		MinioUseSSL:     getEnvBool("MINIO_USE_SSL", false),

		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 100),

		CORSAllowedOrigins: splitEnvList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func splitEnvList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
