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

const dryRunQuiz = `[{"question":"What is the capital of France?","options":["A. Paris","B. London","C. Berlin","D. Madrid"],"answer":"A","explanation":"Simulated question."}]`

// Ollama talks to a local Ollama daemon via its /api/generate endpoint.
type Ollama struct {
	Host, Model string
	NumPredict  int
	DryRun      bool
}

func (c *Ollama) Name() SourceName { return SourceOllama }

func (c *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	log := telemetry.L().With().Str("provider", string(c.Name())).Logger()

	// DRY_RUN mode: skip the daemon call
	if c.DryRun {
		log.Info().Msg("ollama_dry_run_enabled")
		return dryRunQuiz, nil
	}

	numPredict := c.NumPredict
	if numPredict <= 0 {
		numPredict = 1024
	}
	body := map[string]any{
		"model":  c.Model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]any{
			"num_predict": numPredict,
		},
	}
	b, _ := json.Marshal(body)
	log.Debug().Int("body_len", len(b)).Msg("ollama_request")

	host := c.Host
	if host == "" {
		host = "http://127.0.0.1:11434"
	}
	req, _ := http.NewRequestWithContext(ctx, "POST", host+"/api/generate", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	t0 := time.Now()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("ollama_request_failed")
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Str("status", resp.Status).Int("body_len", len(raw)).Msg("ollama_http_error")
		return "", errors.New("ollama http " + resp.Status)
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	text := strings.TrimSpace(out.Response)
	if text == "" {
		return "", errors.New("ollama: empty response")
	}

	log.Debug().Int("latency_ms", int(time.Since(t0)/time.Millisecond)).Int("chars", len(text)).Msg("ollama_response")
	return text, nil
}
