package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fqwhipz/fqwhipz-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// SessionKey is the fixed key the serialized session record lives under.
const SessionKey = "fqwhipz_user"

// sessionTTL matches the JWT expiry.
const sessionTTL = 7 * 24 * time.Hour

// SessionStore persists the single user-session record. Writes replace the
// record wholesale (last-writer-wins); a missing or malformed record reads
// back as no session, never an error.
type SessionStore interface {
	SaveSession(ctx context.Context, user models.User) error
	LoadSession(ctx context.Context) (*models.User, error)
	ClearSession(ctx context.Context) error
}

// RedisSessionStore keeps the session record in Redis.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore connects to Redis at the given URL and verifies the
// connection.
func NewRedisSessionStore(redisURL string) (*RedisSessionStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisSessionStore{client: client}, nil
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, SessionKey, data, sessionTTL).Err()
}

func (s *RedisSessionStore) LoadSession(ctx context.Context) (*models.User, error) {
	data, err := s.client.Get(ctx, SessionKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		// Malformed record: discard it and treat as logged out.
		s.client.Del(ctx, SessionKey)
		return nil, nil
	}
	return &user, nil
}

func (s *RedisSessionStore) ClearSession(ctx context.Context) error {
	return s.client.Del(ctx, SessionKey).Err()
}

// MemorySessionStore is the fallback when no Redis is configured. Same
// semantics, process-local.
type MemorySessionStore struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) SaveSession(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) LoadSession(ctx context.Context) (*models.User, error) {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()

	if data == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.mu.Lock()
		s.data = nil
		s.mu.Unlock()
		return nil, nil
	}
	return &user, nil
}

func (s *MemorySessionStore) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
	return nil
}
