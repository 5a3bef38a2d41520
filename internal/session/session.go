// Package session stores server-side login sessions. The HTTP layer hands the
// browser an opaque session id in a cookie; the store maps that id back to the
// authenticated user.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Get(ctx context.Context, sid string) (uuid.UUID, error)
	Delete(ctx context.Context, sid string) error
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (s *RedisStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	sid := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(sid), userID.String(), s.ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *RedisStore) Get(ctx context.Context, sid string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, sessionKey(sid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrNotFound
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKey(sid)).Err()
}

// MemoryStore keeps sessions in-process. Used by tests and by dev setups
// running without Redis.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memorySession
}

type memorySession struct {
	userID    uuid.UUID
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memorySession),
	}
}

func (s *MemoryStore) Create(_ context.Context, userID uuid.UUID) (string, error) {
	sid := uuid.NewString()
	s.mu.Lock()
	s.sessions[sid] = memorySession{userID: userID, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return sid, nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sid]
	if !ok {
		return uuid.Nil, ErrNotFound
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, sid)
		return uuid.Nil, ErrNotFound
	}
	return sess.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}
