package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedgerLifecycle(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()

	ok, err := ledger.Contains(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ledger.Add(ctx, "tok-1"))

	ok, err = ledger.Contains(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, ledger.Revoke(ctx, "tok-1"))

	ok, err = ledger.Contains(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryLedgerRotate(t *testing.T) {
	ctx := context.Background()
	ledger := NewMemoryLedger()

	require.NoError(t, ledger.Add(ctx, "old"))

	rotated, err := ledger.Rotate(ctx, "old", "new")
	require.NoError(t, err)
	assert.True(t, rotated)

	ok, _ := ledger.Contains(ctx, "old")
	assert.False(t, ok)
	ok, _ = ledger.Contains(ctx, "new")
	assert.True(t, ok)

	// second rotation of the same old token loses the race
	rotated, err = ledger.Rotate(ctx, "old", "newer")
	require.NoError(t, err)
	assert.False(t, rotated)

	ok, _ = ledger.Contains(ctx, "newer")
	assert.False(t, ok)
}
