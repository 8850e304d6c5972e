package quiz

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"quizforge/internal/model"
)

func seededService(t *testing.T, questions []model.Question) (*Service, string) {
	t.Helper()
	store := NewMemoryStore()
	id, err := store.Put(context.Background(), questions)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	return NewService(store, &stubClient{outputs: []string{""}}, 3, time.Second), id
}

func TestCheckGradesInStoredOrder(t *testing.T) {
	svc, id := seededService(t, []model.Question{
		{Text: "Q1", Options: []string{"A. 1", "B. 2", "C. 3", "D. 4"}, Answer: "A", Explanation: "first"},
		{Text: "Q2", Options: []string{"A. 1", "B. 2", "C. 3", "D. 4"}, Answer: "C"},
	})

	results, err := svc.Check(context.Background(), id, map[string]string{"0": " a ", "1": "b"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	first := results[0]
	if !first.IsCorrect || first.YourAnswer != "A" || first.CorrectAnswer != "A" || first.Explanation != "first" {
		t.Errorf("unexpected first result: %+v", first)
	}
	second := results[1]
	if second.IsCorrect || second.YourAnswer != "B" || second.CorrectAnswer != "C" || second.Explanation != "" {
		t.Errorf("unexpected second result: %+v", second)
	}
}

func TestCheckMissingAnswersScoreIncorrect(t *testing.T) {
	svc, id := seededService(t, []model.Question{
		{Text: "Q1", Options: []string{"A. 1", "B. 2", "C. 3", "D. 4"}, Answer: "A"},
	})

	results, err := svc.Check(context.Background(), id, nil)
	if err != nil {
		t.Fatalf("no submitted answers must not be an error, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].IsCorrect || results[0].YourAnswer != "" {
		t.Errorf("unanswered question must score incorrect with empty answer: %+v", results[0])
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	svc, id := seededService(t, []model.Question{
		{Text: "Q1", Options: []string{"A. 1", "B. 2", "C. 3", "D. 4"}, Answer: "B", Explanation: "why"},
	})
	answers := map[string]string{"0": "b"}

	first, err := svc.Check(context.Background(), id, answers)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	second, err := svc.Check(context.Background(), id, answers)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated checks must match: %v vs %v", first, second)
	}
}

func TestCheckUnknownQuiz(t *testing.T) {
	svc, _ := seededService(t, nil)
	if _, err := svc.Check(context.Background(), "unknown-id", map[string]string{"0": "A"}); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}
