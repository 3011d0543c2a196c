package service

import (
	"context"
	"testing"

	"schnose/kzapi"
	"schnose/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// A personal-best lookup with only a map fragment, relying on the invoker's
// stored mode and SteamID.
func TestPersonalBestPipeline(t *testing.T) {
	ctx := context.Background()
	const invoker int64 = 555

	mockUserRepo := new(MockUserRepository)
	mockAPI := new(MockGlobalAPI)

	stored := &models.User{DiscordID: invoker, Name: "alpha", SteamID: strPtr("S1"), Mode: modePtr(models.ModeKZTimer)}
	mockUserRepo.On("GetByDiscordID", ctx, invoker).Return(stored, nil)
	mockAPI.On("Maps", ctx).Return([]models.MapEntry{
		{ID: 992, Name: "kz_epiphany_v2"},
		{ID: 993, Name: "kz_epiphany_long"},
	}, nil)

	pro := models.Record{ID: 9, SteamID: "S1", PlayerName: "alpha", MapName: "kz_epiphany_v2", Mode: models.ModeKZTimer, Time: 97.25}
	mockAPI.On("TopRecords", ctx, kzapi.TopRecordsQuery{
		MapName: "kz_epiphany_v2", Mode: models.ModeKZTimer, Course: 0, HasTeleports: true, SteamID: "S1", Limit: 1,
	}).Return([]models.Record{}, nil)
	mockAPI.On("TopRecords", ctx, kzapi.TopRecordsQuery{
		MapName: "kz_epiphany_v2", Mode: models.ModeKZTimer, Course: 0, HasTeleports: false, SteamID: "S1", Limit: 1,
	}).Return([]models.Record{pro}, nil)

	entry, err := NewMapResolver(mockAPI).Resolve(ctx, "epiphany")
	require.NoError(t, err)
	assert.Equal(t, "kz_epiphany_v2", entry.Name)

	mode, err := NewModeResolver(mockUserRepo).Resolve(ctx, nil, invoker)
	require.NoError(t, err)
	assert.Equal(t, models.ModeKZTimer, mode)

	target, err := NewTargetResolver(mockUserRepo, mockAPI).Resolve(ctx, nil, invoker)
	require.NoError(t, err)
	assert.Equal(t, models.TargetStoredPreference, target.Kind)
	assert.Equal(t, "S1", target.SteamID)

	pair := NewRecordAggregator(mockAPI, nil).PersonalBests(ctx, target.SteamID, entry.Name, mode, 0)
	assert.Nil(t, pair.TP)
	require.NotNil(t, pair.Pro)
	assert.Equal(t, 97.25, pair.Pro.Time)

	mockUserRepo.AssertExpectations(t)
	mockAPI.AssertExpectations(t)
	mockAPI.AssertNotCalled(t, "PlayerByName", mock.Anything, mock.Anything)
}
