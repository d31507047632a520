package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Idempotence(t *testing.T) {
	repo := NewFollowRepository(testDB)
	ctx := context.Background()

	alice := createTestUser(t)
	bob := createTestUser(t)

	inserted, err := repo.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, inserted)

	followers, following, err := repo.Counts(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followers)
	assert.Equal(t, int64(0), following)
}

func TestFollowRepository_Lists(t *testing.T) {
	repo := NewFollowRepository(testDB)
	ctx := context.Background()

	alice := createTestUser(t)
	bob := createTestUser(t)
	carol := createTestUser(t)

	_, err := repo.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Follow(ctx, carol.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Follow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	followers, err := repo.Followers(ctx, bob.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	following, err := repo.Following(ctx, bob.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, alice.Username, following[0].Username)

	ok, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFollowRepository_Unfollow(t *testing.T) {
	repo := NewFollowRepository(testDB)
	ctx := context.Background()

	alice := createTestUser(t)
	bob := createTestUser(t)

	_, err := repo.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))

	ok, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent edge is a no-op
	require.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))
}
