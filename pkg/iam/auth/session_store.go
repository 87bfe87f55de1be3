package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/go-redis/redis/v8"
)

// SessionStore persists active sessions keyed by session ID.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id kernel.SessionID) (*Session, error)
	Delete(ctx context.Context, id kernel.SessionID) error
}

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions in Redis with a TTL matching the session
// expiry, so abandoned sessions vanish on their own.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired()
	}

	key := sessionKeyPrefix + session.ID.String()
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return err
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id kernel.SessionID) (*Session, error) {
	key := sessionKeyPrefix + id.String()
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound()
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id kernel.SessionID) error {
	key := sessionKeyPrefix + id.String()
	return s.client.Del(ctx, key).Err()
}
