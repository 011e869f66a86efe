package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"munchly/internal/cache"
	"munchly/internal/model"
)

func TestStore_CreateSurfacesRedisFailure(t *testing.T) {
	// Port 1 refuses connections, so the write cannot land. Create must
	// report that instead of handing out a session ID nothing can resolve.
	unreachable := cache.New("127.0.0.1:1", "", 0)
	store := NewStore(unreachable)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	sessionID, err := store.Create(ctx, Identity{UserID: 7, Role: model.RoleCustomer})

	assert.Error(t, err)
	assert.Empty(t, sessionID)
}

func TestStore_GetUnknownSession(t *testing.T) {
	unreachable := cache.New("127.0.0.1:1", "", 0)
	store := NewStore(unreachable)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	identity, err := store.Get(ctx, "no-such-session")

	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, identity)
}
