package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodia-server-go/internal/domain/user"
)

func TestMemoryUserStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	u := &user.User{ID: "id-1", Login: "alice", Password: "hash", Version: 1}
	require.NoError(t, store.Insert(ctx, u))

	got, err := store.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Login)

	got, err = store.FindByLogin(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "id-1", got.ID)

	got, err = store.FindByLogin(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Delete(ctx, "id-1"))
	got, err = store.FindByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryUserStorePreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Insert(ctx, &user.User{ID: id, Login: "user-" + id}))
	}

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
	assert.Equal(t, "b", all[2].ID)
}

func TestMemoryUserStoreCopiesRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	u := &user.User{ID: "id-1", Login: "alice", Version: 1}
	require.NoError(t, store.Insert(ctx, u))

	// mutating the caller's copy must not leak into the store
	u.Login = "mallory"

	got, err := store.FindByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Login)

	// nor must mutating a returned record
	got.Version = 99
	again, err := store.FindByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Version)
}
