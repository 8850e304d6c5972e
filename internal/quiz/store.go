package quiz

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"quizforge/internal/model"
)

// Store holds generated quizzes keyed by an opaque identifier. Put assigns a
// fresh identifier per quiz, so concurrent writers never touch each other's
// entries.
type Store interface {
	Put(ctx context.Context, questions []model.Question) (string, error)
	Get(ctx context.Context, id string) ([]model.Question, error)
}

// MemoryStore keeps quizzes for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	quizzes map[string][]model.Question
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{quizzes: make(map[string][]model.Question)}
}

func (s *MemoryStore) Put(_ context.Context, questions []model.Question) (string, error) {
	id := uuid.New().String()
	s.mu.Lock()
	s.quizzes[id] = questions
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) ([]model.Question, error) {
	s.mu.RLock()
	questions, ok := s.quizzes[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrQuizNotFound
	}
	return questions, nil
}

// RedisStore keeps quizzes in Redis so they survive restarts and can be
// shared across replicas. A zero TTL stores without expiry.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, questions []model.Question) (string, error) {
	id := uuid.New().String()
	b, err := json.Marshal(questions)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, quizKey(id), b, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) ([]model.Question, error) {
	b, err := s.rdb.Get(ctx, quizKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	var questions []model.Question
	if err := json.Unmarshal(b, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func quizKey(id string) string { return "quiz:" + id }
