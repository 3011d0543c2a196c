package service

import (
	"context"
	"errors"
	"testing"

	"schnose/kzapi"
	"schnose/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapService_Describe(t *testing.T) {
	ctx := context.Background()
	entry := &models.MapEntry{ID: 992, Name: "kz_epiphany_v2", Difficulty: 5}

	t.Run("details and filters", func(t *testing.T) {
		mockAPI := new(MockGlobalAPI)
		mockMetadata := new(MockMapMetadataAPI)
		details := &models.MapDetails{Name: "kz_epiphany_v2", Bonuses: 2, MapperNames: []string{"Chuckles"}}

		mockMetadata.On("MapDetails", ctx, "kz_epiphany_v2").Return(details, nil)
		mockAPI.On("RecordFilters", ctx, 992, 0).Return([]models.RecordFilter{
			{MapID: 992, ModeID: 200},
			{MapID: 992, ModeID: 202},
			{MapID: 992, ModeID: 999},
		}, nil)

		info := NewMapService(mockAPI, mockMetadata).Describe(ctx, entry)

		assert.Equal(t, details, info.Details)
		assert.Equal(t, map[models.Mode]bool{
			models.ModeKZTimer:  true,
			models.ModeSimpleKZ: false,
			models.ModeVanilla:  true,
		}, info.Filters)
	})

	t.Run("metadata failures degrade", func(t *testing.T) {
		mockAPI := new(MockGlobalAPI)
		mockMetadata := new(MockMapMetadataAPI)
		mockMetadata.On("MapDetails", ctx, "kz_epiphany_v2").Return(nil, errors.New("404"))
		mockAPI.On("RecordFilters", ctx, 992, 0).Return(nil, errors.New("500"))

		info := NewMapService(mockAPI, mockMetadata).Describe(ctx, entry)

		assert.Same(t, entry, info.Entry)
		assert.Nil(t, info.Details)
		assert.Nil(t, info.Filters)
	})
}

func TestMapService_ValidateCourse(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		course  int
		wantErr error
	}{
		{"first bonus", 1, nil},
		{"last bonus", 3, nil},
		{"main course is not a bonus", 0, ErrInvalidCourse},
		{"past the last bonus", 4, ErrInvalidCourse},
		{"negative", -1, ErrInvalidCourse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockMetadata := new(MockMapMetadataAPI)
			mockMetadata.On("MapDetails", ctx, "kz_bonus").Return(&models.MapDetails{Name: "kz_bonus", Bonuses: 3}, nil)

			err := NewMapService(new(MockGlobalAPI), mockMetadata).ValidateCourse(ctx, "kz_bonus", tc.course)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("metadata unavailable", func(t *testing.T) {
		mockMetadata := new(MockMapMetadataAPI)
		mockMetadata.On("MapDetails", ctx, "kz_bonus").Return(nil, errors.New("timeout"))

		err := NewMapService(new(MockGlobalAPI), mockMetadata).ValidateCourse(ctx, "kz_bonus", 1)
		assert.ErrorIs(t, err, ErrRemoteAPI)
	})
}

func TestMapService_Leaderboard(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockGlobalAPI)
	query := kzapi.TopRecordsQuery{MapName: "kz_a", Mode: models.ModeKZTimer, HasTeleports: true, Limit: 10}
	mockAPI.On("TopRecords", ctx, query).Return([]models.Record{{ID: 1}, {ID: 2}}, nil)

	records, err := NewMapService(mockAPI, new(MockMapMetadataAPI)).Leaderboard(ctx, "kz_a", models.ModeKZTimer, 0, true, 10)

	require.NoError(t, err)
	assert.Len(t, records, 2)

	bonus := new(MockGlobalAPI)
	bonusQuery := kzapi.TopRecordsQuery{MapName: "kz_a", Mode: models.ModeKZTimer, Course: 3, Limit: 10}
	bonus.On("TopRecords", ctx, bonusQuery).Return([]models.Record{{ID: 3}}, nil)
	records, err = NewMapService(bonus, new(MockMapMetadataAPI)).Leaderboard(ctx, "kz_a", models.ModeKZTimer, 3, false, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	failing := new(MockGlobalAPI)
	failing.On("TopRecords", ctx, query).Return(nil, errors.New("500"))
	_, err = NewMapService(failing, new(MockMapMetadataAPI)).Leaderboard(ctx, "kz_a", models.ModeKZTimer, 0, true, 10)
	assert.ErrorIs(t, err, ErrRemoteAPI)
}

func TestMapService_Random(t *testing.T) {
	ctx := context.Background()
	catalog := []models.MapEntry{
		{ID: 1, Name: "kz_beginnerblock", Difficulty: 1},
		{ID: 2, Name: "kz_lego", Difficulty: 2},
		{ID: 3, Name: "kz_lego2", Difficulty: 2},
		{ID: 4, Name: "kz_epiphany_v2", Difficulty: 5},
	}
	tier := func(n int) *int { return &n }

	newService := func(api GlobalAPI, pick int) *mapService {
		return &mapService{api: api, metadata: new(MockMapMetadataAPI), intn: func(n int) int {
			require.Less(t, pick, n)
			return pick
		}}
	}

	t.Run("any tier", func(t *testing.T) {
		mockAPI := new(MockGlobalAPI)
		mockAPI.On("Maps", ctx).Return(catalog, nil)

		entry, err := newService(mockAPI, 3).Random(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "kz_epiphany_v2", entry.Name)
	})

	t.Run("tier filter", func(t *testing.T) {
		mockAPI := new(MockGlobalAPI)
		mockAPI.On("Maps", ctx).Return(catalog, nil)

		entry, err := newService(mockAPI, 1).Random(ctx, tier(2))
		require.NoError(t, err)
		assert.Equal(t, "kz_lego2", entry.Name)
	})

	t.Run("empty tier", func(t *testing.T) {
		mockAPI := new(MockGlobalAPI)
		mockAPI.On("Maps", ctx).Return(catalog, nil)

		_, err := newService(mockAPI, 0).Random(ctx, tier(7))
		require.ErrorIs(t, err, ErrMapNotFound)
		svcErr, ok := AsError(err)
		require.True(t, ok)
		assert.Contains(t, svcErr.Message, "tier 7")
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		mockAPI := new(MockGlobalAPI)
		mockAPI.On("Maps", ctx).Return(nil, errors.New("500"))

		_, err := NewMapService(mockAPI, new(MockMapMetadataAPI)).Random(ctx, nil)
		assert.ErrorIs(t, err, ErrRemoteAPI)
	})
}

func TestStatusService_Check(t *testing.T) {
	ctx := context.Background()

	mockStatus := new(MockStatusAPI)
	mockStatus.On("Summary", ctx).Return(&models.APIStatus{}, nil).Once()
	mockStatus.On("Summary", ctx).Return(nil, errors.New("dns")).Once()

	service := NewStatusService(mockStatus)

	_, err := service.Check(ctx)
	assert.NoError(t, err)

	_, err = service.Check(ctx)
	assert.ErrorIs(t, err, ErrRemoteAPI)
}
