package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/IbrahimAwiby/youtube-clone/internal/model"
)

// sessionStore persists sessions keyed by token digest. The raw token lives
// only in the user's cookie.
type sessionStore interface {
	Put(ctx context.Context, digest string, sess model.Session, ttl time.Duration) error
	Get(ctx context.Context, digest string) (*model.Session, error)
	Del(ctx context.Context, digest string) error
}

const sessionKeyPrefix = "session:"

type redisSessionStore struct {
	rdb *redis.Client
}

func newRedisSessionStore(rdb *redis.Client) *redisSessionStore {
	return &redisSessionStore{rdb: rdb}
}

func (s *redisSessionStore) Put(ctx context.Context, digest string, sess model.Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+digest, b, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, digest string) (*model.Session, error) {
	data, err := s.rdb.Get(ctx, sessionKeyPrefix+digest).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisSessionStore) Del(ctx context.Context, digest string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+digest).Err()
}

// memorySessionStore keeps sessions in-process when Redis is disabled.
// Sessions then die with the process, which matches the degraded cache mode.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	sess      model.Session
	expiresAt time.Time
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *memorySessionStore) Put(_ context.Context, digest string, sess model.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[digest] = memorySession{sess: sess, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, digest string) (*model.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[digest]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, digest)
		s.mu.Unlock()
		return nil, nil
	}
	sess := entry.sess
	return &sess, nil
}

func (s *memorySessionStore) Del(_ context.Context, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, digest)
	return nil
}
