package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	UploadDir   string
	// Groq / OpenAI-compatible chat completions API
	GroqAPIURL       string
	GroqAPIKey       string
	GroqModel        string
	AITimeoutSeconds int
	AIMaxTokens      int
	// When true, a failed AI call degrades into deterministic rule-based
	// suggestions instead of surfacing an error to the client.
	AIFallbackEnabled bool
	// GitHub API (optional token raises the unauthenticated rate limit)
	GithubToken string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitUploadThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8000"),
		// Trailing slash stripped to avoid double slashes when joining paths
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:8080"), "/"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads/resumes"),
		// Groq Configuration
		GroqAPIURL:        getEnv("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions"),
		GroqAPIKey:        getEnv("GROQ_API_KEY", ""),
		GroqModel:         getEnv("GROQ_MODEL", "llama3-8b-8192"),
		AITimeoutSeconds:  getEnvInt("AI_TIMEOUT_SECONDS", 35),
		AIMaxTokens:       getEnvInt("AI_MAX_TOKENS", 1000),
		AIFallbackEnabled: getEnvBool("AI_FALLBACK_ENABLED", false),
		GithubToken:       getEnv("GITHUB_TOKEN", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),  // 10 uploads per window
	}

	if cfg.GroqAPIKey == "" {
		log.Println("WARNING: GROQ_API_KEY is missing. Career suggestions will fail unless AI_FALLBACK_ENABLED=true.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
