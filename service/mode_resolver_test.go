package service

import (
	"context"
	"errors"
	"testing"

	"schnose/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func modePtr(m models.Mode) *models.Mode {
	return &m
}

func strPtr(s string) *string {
	return &s
}

func TestModeResolver_ExplicitModeWins(t *testing.T) {
	ctx := context.Background()

	for _, explicit := range models.AllModes() {
		t.Run(string(explicit), func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			resolver := NewModeResolver(mockUserRepo)

			mode, err := resolver.Resolve(ctx, modePtr(explicit), 42)

			require.NoError(t, err)
			assert.Equal(t, explicit, mode)
			mockUserRepo.AssertNotCalled(t, "GetByDiscordID", mock.Anything, mock.Anything)
		})
	}
}

func TestModeResolver_FallsBackToStoredPreference(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		stored   *models.User
		repoErr  error
		wantMode models.Mode
		wantErr  error
	}{
		{
			name:     "stored mode",
			stored:   &models.User{DiscordID: 42, Mode: modePtr(models.ModeVanilla)},
			wantMode: models.ModeVanilla,
		},
		{
			name:    "no row",
			stored:  nil,
			wantErr: ErrMissingMode,
		},
		{
			name:    "row without mode",
			stored:  &models.User{DiscordID: 42, SteamID: strPtr("STEAM_1:0:1")},
			wantErr: ErrMissingMode,
		},
		{
			name:    "store unavailable",
			repoErr: errors.New("connection refused"),
			wantErr: ErrDatabase,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockUserRepo.On("GetByDiscordID", ctx, int64(42)).Return(tc.stored, tc.repoErr)

			resolver := NewModeResolver(mockUserRepo)
			mode, err := resolver.Resolve(ctx, nil, 42)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, mode)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantMode, mode)
			}
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestModeResolver_DatabaseErrorHidesDetail(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetByDiscordID", ctx, int64(7)).Return(nil, errors.New("pq: password authentication failed"))

	_, err := NewModeResolver(mockUserRepo).Resolve(ctx, nil, 7)

	svcErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Database Error.", svcErr.Message)
	assert.NotContains(t, svcErr.Message, "password")
}
