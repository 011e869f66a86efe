package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"munchly/internal/cache"
	"munchly/internal/model"
)

const (
	// TTL is how long a session stays valid. Matches the cookie max age.
	TTL = 24 * time.Hour

	sessionKeyPrefix = "session:"
)

// ErrSessionNotFound is returned when a session ID resolves to nothing.
var ErrSessionNotFound = errors.New("session not found")

// Identity is the immutable request context value resolved from a session.
// Handlers and services receive it explicitly instead of reading ambient
// state.
type Identity struct {
	UserID uint       `json:"user_id"`
	Role   model.Role `json:"role"`
}

// Store holds server-side sessions referenced by an opaque ID. The ID is the
// only thing the client ever sees, carried in a cookie.
type Store interface {
	Create(ctx context.Context, identity Identity) (string, error)
	Get(ctx context.Context, sessionID string) (*Identity, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisStore struct {
	cache *cache.Client
}

// NewStore creates a Redis-backed session store.
func NewStore(cache *cache.Client) Store {
	return &redisStore{cache: cache}
}

// Create stores the identity under a fresh opaque ID with the session TTL.
func (s *redisStore) Create(ctx context.Context, identity Identity) (string, error) {
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	// A swallowed write here would hand out a cookie no request can ever
	// resolve, so the strict variant is used and the failure surfaces.
	sessionID := uuid.New().String()
	if err := s.cache.SetStrict(ctx, sessionKeyPrefix+sessionID, payload, TTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sessionID, nil
}

// Get resolves a session ID to an identity and slides the TTL forward.
func (s *redisStore) Get(ctx context.Context, sessionID string) (*Identity, error) {
	key := sessionKeyPrefix + sessionID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, ErrSessionNotFound
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	_ = s.cache.Expire(ctx, key, TTL)
	return &identity, nil
}

// Delete removes a session.
func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
