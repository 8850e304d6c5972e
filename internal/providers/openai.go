package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"quizforge/internal/telemetry"
)

// OpenAI generates through the chat completions API.
type OpenAI struct {
	Key, Model string
	MaxTokens  int
	DryRun     bool
}

func (c *OpenAI) Name() SourceName { return SourceOpenAI }

func (c *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	log := telemetry.L().With().Str("provider", string(c.Name())).Logger()

	// DRY_RUN mode: skip API call
	if c.DryRun {
		log.Info().Msg("openai_dry_run_enabled")
		return dryRunQuiz, nil
	}

	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	body := map[string]any{
		"model": c.Model,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
		"temperature": 0.2,
		"max_tokens":  maxTokens,
	}

	b, _ := json.Marshal(body)
	log.Debug().Int("body_len", len(b)).Msg("openai_request")

	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.Key)
	req.Header.Set("Content-Type", "application/json")

	t0 := time.Now()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("openai_request_failed")
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Str("status", resp.Status).RawJSON("body", raw).Msg("openai_http_error")
		return "", errors.New("openai http " + resp.Status)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}

	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("openai: empty text")
	}

	log.Debug().Int("latency_ms", int(time.Since(t0)/time.Millisecond)).Int("chars", len(text)).Msg("openai_response")
	return text, nil
}
