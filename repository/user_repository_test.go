package repository

import (
	"context"
	"sync"
	"testing"

	"schnose/models"
	"schnose/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Upsert(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("missing user", func(t *testing.T) {
		user, err := repo.GetByDiscordID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("first write creates the row", func(t *testing.T) {
		user, err := repo.Upsert(ctx, testutil.NewSteamLink(1001, "alpha", "STEAM_1:1:161178172"))
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, int64(1001), user.DiscordID)
		assert.Equal(t, "alpha", user.Name)
		require.NotNil(t, user.SteamID)
		assert.Equal(t, "STEAM_1:1:161178172", *user.SteamID)
		assert.Nil(t, user.Mode)
	})

	t.Run("mode write keeps the steam id", func(t *testing.T) {
		_, err := repo.Upsert(ctx, testutil.NewModeChange(1001, "alpha_renamed", models.ModeSimpleKZ))
		require.NoError(t, err)

		user, err := repo.GetByDiscordID(ctx, 1001)
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "alpha_renamed", user.Name)
		require.NotNil(t, user.SteamID)
		assert.Equal(t, "STEAM_1:1:161178172", *user.SteamID)
		require.NotNil(t, user.Mode)
		assert.Equal(t, models.ModeSimpleKZ, *user.Mode)
		assert.False(t, user.UpdatedAt.Before(user.CreatedAt))
	})

	t.Run("clearing the mode", func(t *testing.T) {
		user, err := repo.Upsert(ctx, &models.UserUpdate{DiscordID: 1001, Name: "alpha", ClearMode: true})
		require.NoError(t, err)
		assert.Nil(t, user.Mode)
		assert.True(t, user.HasSteamID())
	})

	t.Run("steam id write keeps the mode", func(t *testing.T) {
		_, err := repo.Upsert(ctx, testutil.NewModeChange(1002, "bravo", models.ModeVanilla))
		require.NoError(t, err)

		user, err := repo.Upsert(ctx, testutil.NewSteamLink(1002, "bravo", "STEAM_0:0:12345"))
		require.NoError(t, err)
		require.NotNil(t, user.Mode)
		assert.Equal(t, models.ModeVanilla, *user.Mode)
		assert.Equal(t, "STEAM_0:0:12345", *user.SteamID)
	})

	t.Run("concurrent writes leave one row", func(t *testing.T) {
		var wg sync.WaitGroup
		for _, mode := range models.AllModes() {
			wg.Add(1)
			go func(mode models.Mode) {
				defer wg.Done()
				_, err := repo.Upsert(ctx, testutil.NewModeChange(1003, "charlie", mode))
				assert.NoError(t, err)
			}(mode)
		}
		wg.Wait()

		user, err := repo.GetByDiscordID(ctx, 1003)
		require.NoError(t, err)
		require.NotNil(t, user)
		require.NotNil(t, user.Mode)
		assert.Contains(t, models.AllModes(), *user.Mode)
	})
}
