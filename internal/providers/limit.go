package providers

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"quizforge/internal/telemetry"
)

// Throttled wraps a Client with a request-rate ceiling and bounded retries
// with exponential backoff on transport failures. These retries cover the
// transport layer only; deciding whether the returned text is usable belongs
// to the caller.
type Throttled struct {
	inner      Client
	limiter    *rate.Limiter
	maxRetries int
}

func NewThrottled(inner Client, rps, burst, maxRetries int) *Throttled {
	if rps <= 0 {
		rps = 2
	}
	if burst <= 0 {
		burst = 2
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Throttled{
		inner:      inner,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		maxRetries: maxRetries,
	}
}

func (t *Throttled) Name() SourceName { return t.inner.Name() }

func (t *Throttled) Generate(ctx context.Context, prompt string) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if attempt > 0 {
			d := time.Duration(200*(1<<uint(attempt-1))) * time.Millisecond
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(d):
			}
		}

		text, err := t.inner.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		lg := telemetry.L()
		lg.Warn().Err(err).
			Str("provider", string(t.Name())).
			Int("try", attempt+1).
			Msg("provider_call_retry")
	}
	return "", lastErr
}
