package quiz

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"quizforge/internal/model"
	"quizforge/internal/providers"
	"quizforge/internal/telemetry"
)

// GenerateParams are the inputs of one generation request. Zero values fall
// back to the documented defaults.
type GenerateParams struct {
	Content    string
	Count      int
	Subject    string
	Difficulty string
}

// Service drives the generate -> recover -> validate cycle against an LLM
// provider and owns the stored quizzes.
type Service struct {
	store    Store
	client   providers.Client
	attempts int
	timeout  time.Duration
}

func NewService(store Store, client providers.Client, attempts int, timeout time.Duration) *Service {
	if attempts <= 0 {
		attempts = 3
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Service{store: store, client: client, attempts: attempts, timeout: timeout}
}

// Generate runs up to the configured number of attempts, strictly in
// sequence. An attempt succeeds as soon as it yields one valid question; a
// failed attempt carries nothing over to the next. On success the validated
// list is truncated to the requested count, stored under a fresh identifier,
// and returned as public views. After the last failed attempt the caller gets
// ErrGenerationExhausted, never a partial result.
func (s *Service) Generate(ctx context.Context, p GenerateParams) (string, []model.PublicQuestion, error) {
	if p.Count <= 0 {
		p.Count = DefaultQuestionCount
	}
	p.Count = ClampCount(p.Count)
	if strings.TrimSpace(p.Subject) == "" {
		p.Subject = DefaultSubject
	}
	if strings.TrimSpace(p.Difficulty) == "" {
		p.Difficulty = DefaultDifficulty
	}

	prompt := BuildPrompt(p.Content, p.Count, p.Subject, p.Difficulty)
	log := telemetry.L().With().
		Str("provider", string(s.client.Name())).
		Int("count", p.Count).
		Logger()

	for attempt := 1; attempt <= s.attempts; attempt++ {
		valid := s.runAttempt(ctx, prompt, attempt, log)
		if len(valid) == 0 {
			continue
		}
		if len(valid) > p.Count {
			valid = valid[:p.Count]
		}

		id, err := s.store.Put(ctx, valid)
		if err != nil {
			return "", nil, err
		}
		public := make([]model.PublicQuestion, 0, len(valid))
		for _, q := range valid {
			public = append(public, q.Public())
		}
		log.Info().Str("quiz_id", id).Int("questions", len(valid)).Int("attempt", attempt).Msg("quiz_generated")
		return id, public, nil
	}

	log.Error().Int("attempts", s.attempts).Msg("generation_exhausted")
	return "", nil, ErrGenerationExhausted
}

// runAttempt is one atomic cycle: call the model, recover candidates,
// validate each. Provider errors and malformed output count as a failed
// attempt, never as a fatal abort.
func (s *Service) runAttempt(ctx context.Context, prompt string, attempt int, log zerolog.Logger) []model.Question {
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.client.Generate(genCtx, prompt)
	if err != nil {
		log.Warn().Err(err).Int("attempt", attempt).Msg("provider_call_failed")
		return nil
	}
	log.Debug().Int("attempt", attempt).Int("raw_len", len(raw)).Msg("model_output")

	candidates := RecoverCandidates(raw)
	if len(candidates) == 0 {
		log.Warn().Err(ErrMalformedOutput).Int("attempt", attempt).Msg("attempt_failed")
		return nil
	}

	var valid []model.Question
	for _, c := range candidates {
		q, err := ValidateCandidate(c)
		if err != nil {
			log.Debug().Err(err).Msg("candidate_dropped")
			continue
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		log.Warn().Int("attempt", attempt).Int("candidates", len(candidates)).Msg("no_candidate_validated")
	}
	return valid
}

// Check grades submitted answers against a stored quiz, in stored order.
// Answers map stringified zero-based indexes to letters; an unanswered
// question scores incorrect rather than erroring. The only failure mode is
// an unknown quiz identifier.
func (s *Service) Check(ctx context.Context, quizID string, answers map[string]string) ([]model.CheckResult, error) {
	questions, err := s.store.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}

	results := make([]model.CheckResult, 0, len(questions))
	for i, q := range questions {
		submitted := strings.ToUpper(strings.TrimSpace(answers[strconv.Itoa(i)]))
		correct := strings.ToUpper(strings.TrimSpace(q.Answer))
		results = append(results, model.CheckResult{
			Question:      q.Text,
			YourAnswer:    submitted,
			CorrectAnswer: correct,
			IsCorrect:     submitted == correct,
			Explanation:   q.Explanation,
		})
	}
	return results, nil
}
