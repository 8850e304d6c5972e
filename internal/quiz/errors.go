package quiz

import "errors"

var (
	// ErrMalformedOutput: raw model text was neither a JSON array nor a source
	// of recoverable fragments. Handled by retrying, never surfaced.
	ErrMalformedOutput = errors.New("model output has no recoverable questions")

	// Per-candidate validation failures. Dropping the candidate is the only
	// consequence; siblings keep processing.
	ErrEmptyQuestionText   = errors.New("question text is empty")
	ErrInvalidOptionCount  = errors.New("question must have exactly 4 options")
	ErrInvalidAnswerLetter = errors.New("answer must be one of A, B, C or D")

	// ErrGenerationExhausted: every attempt produced zero valid questions.
	ErrGenerationExhausted = errors.New("all generation attempts produced no valid questions")

	// ErrQuizNotFound: unknown quiz identifier on lookup.
	ErrQuizNotFound = errors.New("quiz not found")
)
