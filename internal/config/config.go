package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv, AppPort string
	CORSOrigins     []string
	StaticDir       string

	LLMProvider string

	OllamaHost, OllamaModel string
	OllamaNumPredict        int

	OpenAIKey, OpenAIModel string
	OpenAIMaxTokens        int

	ProviderRPS        int
	ProviderBurst      int
	ProviderMaxRetries int
	ProviderDryRun     bool

	GenAttempts    int
	AttemptTimeout time.Duration

	RedisAddr string
	RedisDB   int
	QuizTTL   time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		AppEnv:      get("APP_ENV", "dev"),
		AppPort:     get("APP_PORT", "8000"),
		CORSOrigins: split(get("CORS_ORIGINS", "*")),
		StaticDir:   get("STATIC_DIR", "./frontend"),

		LLMProvider: get("LLM_PROVIDER", "ollama"),

		OllamaHost:       get("OLLAMA_HOST", "http://127.0.0.1:11434"),
		OllamaModel:      get("OLLAMA_MODEL", "llama3.2:1b"),
		OllamaNumPredict: atoi(get("OLLAMA_NUM_PREDICT", "1024")),

		OpenAIKey:       get("OPENAI_API_KEY", ""),
		OpenAIModel:     get("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIMaxTokens: atoi(get("OPENAI_MAX_TOKENS", "1024")),

		ProviderRPS:        atoi(get("PROVIDER_RPS", "2")),
		ProviderBurst:      atoi(get("PROVIDER_BURST", "2")),
		ProviderMaxRetries: atoi(get("PROVIDER_MAX_RETRIES", "2")),
		ProviderDryRun:     parseBool(get("PROVIDER_DRY_RUN", "false")),

		GenAttempts:    atoi(get("GEN_ATTEMPTS", "3")),
		AttemptTimeout: mustDuration(get("GEN_ATTEMPT_TIMEOUT", "60s")),

		RedisAddr: get("REDIS_ADDR", ""),
		RedisDB:   atoi(get("REDIS_DB", "0")),
		QuizTTL:   mustDuration(get("QUIZ_TTL", "0s")),
	}
	return c
}

func get(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
func atoi(s string) int                   { i, _ := strconv.Atoi(s); return i }
func parseBool(s string) bool             { b, _ := strconv.ParseBool(s); return b }
func mustDuration(s string) time.Duration { d, _ := time.ParseDuration(s); return d }
func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func GetEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}
