package service

import (
	"context"

	"schnose/kzapi"
	"schnose/models"
)

// UserRepository defines the interface for preference storage
type UserRepository interface {
	// GetByDiscordID returns nil, nil when the user has no row
	GetByDiscordID(ctx context.Context, discordID int64) (*models.User, error)

	// Upsert writes the fields present in update, creating the row if needed
	Upsert(ctx context.Context, update *models.UserUpdate) (*models.User, error)
}

// GlobalAPI is the subset of the KZ GlobalAPI the services use
type GlobalAPI interface {
	Maps(ctx context.Context) ([]models.MapEntry, error)
	PlayerByName(ctx context.Context, name string) (*models.Player, error)
	PlayerBySteamID(ctx context.Context, steamID string) (*models.Player, error)
	TopRecords(ctx context.Context, q kzapi.TopRecordsQuery) ([]models.Record, error)
	RecordFilters(ctx context.Context, mapID, course int) ([]models.RecordFilter, error)
	RecordPlace(ctx context.Context, recordID int) (int, error)
	WorldRecordHolders(ctx context.Context, mode models.Mode, teleports, bonuses bool) ([]models.WorldRecordHolder, error)
}

// MapMetadataAPI provides KZ:GO map details
type MapMetadataAPI interface {
	MapDetails(ctx context.Context, mapName string) (*models.MapDetails, error)
}

// StatusAPI reads the GlobalAPI status page
type StatusAPI interface {
	Summary(ctx context.Context) (*models.APIStatus, error)
}

// SlotObserver is told whether each aggregated slot came back populated
type SlotObserver interface {
	ObserveSlot(runType string, present bool)
}

// PreferenceService reads and writes per-user preferences
type PreferenceService interface {
	// Get returns the stored preferences, or nil if the user never saved any
	Get(ctx context.Context, discordID int64) (*models.User, error)

	// SetMode stores mode; a nil mode clears the preference
	SetMode(ctx context.Context, discordID int64, name string, mode *models.Mode) (*models.User, error)

	// LinkSteamID validates steamID against the GlobalAPI and stores it
	LinkSteamID(ctx context.Context, discordID int64, name, steamID string) (*models.User, error)
}

// ModeResolver picks the mode a command runs in
type ModeResolver interface {
	// Resolve returns explicit when set, else the invoker's stored mode
	Resolve(ctx context.Context, explicit *models.Mode, invokerID int64) (models.Mode, error)
}

// TargetResolver picks the player a command runs against
type TargetResolver interface {
	// Resolve interprets token as a mention, a SteamID or a player name; a
	// nil token falls back to the invoker's linked SteamID
	Resolve(ctx context.Context, token *string, invokerID int64) (*models.TargetResolution, error)
}

// MapResolver finds a catalog map from a name fragment
type MapResolver interface {
	Resolve(ctx context.Context, fragment string) (*models.MapEntry, error)
}

// RecordAggregator fetches the teleport and pro record of a map in parallel
type RecordAggregator interface {
	// WorldRecords returns the map's top teleport and pro runs
	WorldRecords(ctx context.Context, mapName string, mode models.Mode, course int) models.RecordPair

	// PersonalBests returns steamID's best teleport and pro runs
	PersonalBests(ctx context.Context, steamID, mapName string, mode models.Mode, course int) models.RecordPair

	// Records runs an arbitrary query; see RecordQuery
	Records(ctx context.Context, q RecordQuery) models.RecordPair

	// WithPlaces looks up the leaderboard position of each present slot
	WithPlaces(ctx context.Context, pair models.RecordPair) models.RecordPair
}

// MapService serves the map metadata commands
type MapService interface {
	// Describe gathers KZ:GO details and per-mode filters. Missing metadata
	// leaves the corresponding fields empty.
	Describe(ctx context.Context, entry *models.MapEntry) *MapInfo

	// ValidateCourse checks that course is a bonus of mapName
	ValidateCourse(ctx context.Context, mapName string, course int) error

	// Leaderboard returns the top runs on a map course for one run type
	Leaderboard(ctx context.Context, mapName string, mode models.Mode, course int, teleports bool, limit int) ([]models.Record, error)

	// Random picks a catalog map, restricted to tier when it is set
	Random(ctx context.Context, tier *int) (*models.MapEntry, error)
}

// PlayerService serves the player summary commands
type PlayerService interface {
	// Profile summarizes steamID's completions and points in mode
	Profile(ctx context.Context, steamID string, mode models.Mode) (*PlayerProfile, error)

	// WorldRecordHolders ranks players by world record count
	WorldRecordHolders(ctx context.Context, mode models.Mode, teleports, bonuses bool) ([]models.WorldRecordHolder, error)
}

// StatusService reports GlobalAPI health
type StatusService interface {
	Check(ctx context.Context) (*models.APIStatus, error)
}
