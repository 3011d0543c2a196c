package service

import (
	"context"

	"schnose/events"
	"schnose/kzapi"
	"schnose/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, update *models.UserUpdate) (*models.User, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockGlobalAPI is a mock implementation of GlobalAPI
type MockGlobalAPI struct {
	mock.Mock
}

func (m *MockGlobalAPI) Maps(ctx context.Context) ([]models.MapEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MapEntry), args.Error(1)
}

func (m *MockGlobalAPI) PlayerByName(ctx context.Context, name string) (*models.Player, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockGlobalAPI) PlayerBySteamID(ctx context.Context, steamID string) (*models.Player, error) {
	args := m.Called(ctx, steamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockGlobalAPI) TopRecords(ctx context.Context, q kzapi.TopRecordsQuery) ([]models.Record, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockGlobalAPI) RecordFilters(ctx context.Context, mapID, course int) ([]models.RecordFilter, error) {
	args := m.Called(ctx, mapID, course)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RecordFilter), args.Error(1)
}

func (m *MockGlobalAPI) RecordPlace(ctx context.Context, recordID int) (int, error) {
	args := m.Called(ctx, recordID)
	return args.Int(0), args.Error(1)
}

func (m *MockGlobalAPI) WorldRecordHolders(ctx context.Context, mode models.Mode, teleports, bonuses bool) ([]models.WorldRecordHolder, error) {
	args := m.Called(ctx, mode, teleports, bonuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorldRecordHolder), args.Error(1)
}

// MockMapMetadataAPI is a mock implementation of MapMetadataAPI
type MockMapMetadataAPI struct {
	mock.Mock
}

func (m *MockMapMetadataAPI) MapDetails(ctx context.Context, mapName string) (*models.MapDetails, error) {
	args := m.Called(ctx, mapName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MapDetails), args.Error(1)
}

// MockStatusAPI is a mock implementation of StatusAPI
type MockStatusAPI struct {
	mock.Mock
}

func (m *MockStatusAPI) Summary(ctx context.Context) (*models.APIStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.APIStatus), args.Error(1)
}

// MockEventPublisher is a mock implementation of events.Publisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}
