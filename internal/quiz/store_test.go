package quiz

import (
	"context"
	"errors"
	"sync"
	"testing"

	"quizforge/internal/model"
)

func sampleQuestions(text string) []model.Question {
	return []model.Question{{
		Text:    text,
		Options: []string{"A. 1", "B. 2", "C. 3", "D. 4"},
		Answer:  "A",
	}}
}

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Put(ctx, sampleQuestions("Q1"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if id == "" {
		t.Fatal("put must assign a non-empty identifier")
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0].Text != "Q1" {
		t.Fatalf("unexpected quiz: %v", got)
	}
}

func TestMemoryStoreUnknownID(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestMemoryStoreConcurrentPut(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	const n = 50
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := s.Put(ctx, sampleQuestions("Q"))
			if err != nil {
				t.Errorf("put: %v", err)
				return
			}
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		if id == "" {
			t.Fatal("missing identifier after concurrent put")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier %s", id)
		}
		seen[id] = struct{}{}
		if _, err := s.Get(ctx, id); err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
	}
}
