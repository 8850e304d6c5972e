package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"quizforge/internal/config"
	"quizforge/internal/middleware"
	"quizforge/internal/providers"
	"quizforge/internal/quiz"
	"quizforge/internal/telemetry"
)

func main() {
	cfg := config.Load()

	tlog := telemetry.Init(telemetry.FromEnv(config.GetEnv))
	tlog.Info().Str("port", cfg.AppPort).Str("provider", cfg.LLMProvider).Msg("booting quizforge")

	var store quiz.Store = quiz.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal(err)
		}
		store = quiz.NewRedisStore(rdb, cfg.QuizTTL)
		tlog.Info().Str("addr", cfg.RedisAddr).Msg("using redis quiz store")
	}

	svc := quiz.NewService(store, buildClient(cfg), cfg.GenAttempts, cfg.AttemptTimeout)
	qh := quiz.NewHandler(svc)

	app := fiber.New()

	app.Use(middleware.RequestID())
	app.Use(middleware.Recover())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.RequestLog())
	app.Use(middleware.RateLimiter())
	app.Use(middleware.SecureHeaders())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Static("/static", cfg.StaticDir)

	app.Post("/generate-questions", qh.GenerateQuestions)
	app.Post("/check-answers", qh.CheckAnswers)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}

func buildClient(cfg *config.Config) providers.Client {
	var inner providers.Client
	switch cfg.LLMProvider {
	case "openai":
		inner = &providers.OpenAI{
			Key:       cfg.OpenAIKey,
			Model:     cfg.OpenAIModel,
			MaxTokens: cfg.OpenAIMaxTokens,
			DryRun:    cfg.ProviderDryRun,
		}
	default:
		inner = &providers.Ollama{
			Host:       cfg.OllamaHost,
			Model:      cfg.OllamaModel,
			NumPredict: cfg.OllamaNumPredict,
			DryRun:     cfg.ProviderDryRun,
		}
	}
	return providers.NewThrottled(inner, cfg.ProviderRPS, cfg.ProviderBurst, cfg.ProviderMaxRetries)
}
