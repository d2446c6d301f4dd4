package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResetStoreIssueAndVerify(t *testing.T) {
	setupMiniredis(t)
	store := NewResetStore(time.Minute)
	ctx := context.Background()

	token, err := store.IssueToken(ctx, "store-admin", 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ok, err := store.VerifyToken(ctx, "store-admin", 42, "wrong-token")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = store.VerifyToken(ctx, "store-admin", 42, token)
	require.NoError(t, err)
	require.True(t, ok)

	// Tokens are single use.
	_, err = store.VerifyToken(ctx, "store-admin", 42, token)
	require.Error(t, err)
}

func TestResetStoreReissueReplacesToken(t *testing.T) {
	setupMiniredis(t)
	store := NewResetStore(time.Minute)
	ctx := context.Background()

	first, err := store.IssueToken(ctx, "customer", 5)
	require.NoError(t, err)
	second, err := store.IssueToken(ctx, "customer", 5)
	require.NoError(t, err)

	ok, err := store.VerifyToken(ctx, "customer", 5, first)
	require.NoError(t, err)
	require.False(t, ok)

	// Consuming a failed match is not allowed, so the live token still works.
	token2ok, err := store.VerifyToken(ctx, "customer", 5, second)
	require.NoError(t, err)
	require.True(t, token2ok)
}

func TestResetStoreExpiry(t *testing.T) {
	mr := setupMiniredis(t)
	store := NewResetStore(time.Minute)
	ctx := context.Background()

	token, err := store.IssueToken(ctx, "customer", 6)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.VerifyToken(ctx, "customer", 6, token)
	require.Error(t, err)
}
