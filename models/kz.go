package models

import (
	"time"
)

// MapEntry is a map from the GlobalAPI catalog
type MapEntry struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
	Validated  bool   `json:"validated"`
	Filesize   int64  `json:"filesize"`
	CreatedOn  string `json:"created_on"`
	UpdatedOn  string `json:"updated_on"`
}

// Player is a GlobalAPI player
type Player struct {
	SteamID64    string `json:"steamid64"`
	SteamID      string `json:"steam_id"`
	IsBanned     bool   `json:"is_banned"`
	TotalRecords int    `json:"total_records"`
	Name         string `json:"name"`
}

// Record is a single completed run as returned by records/top
type Record struct {
	ID         int     `json:"id"`
	SteamID64  string  `json:"steamid64"`
	PlayerName string  `json:"player_name"`
	SteamID    string  `json:"steam_id"`
	ServerID   int     `json:"server_id"`
	MapID      int     `json:"map_id"`
	Stage      int     `json:"stage"`
	Mode       Mode    `json:"mode"`
	Tickrate   int     `json:"tickrate"`
	Time       float64 `json:"time"`
	Teleports  int     `json:"teleports"`
	CreatedOn  string  `json:"created_on"`
	UpdatedOn  string  `json:"updated_on"`
	ServerName string  `json:"server_name"`
	MapName    string  `json:"map_name"`
	Points     int     `json:"points"`
	ReplayID   int     `json:"replay_id"`
}

// IsTeleportRun reports whether the run used checkpoints
func (r *Record) IsTeleportRun() bool {
	return r.Teleports > 0
}

// HasReplay reports whether the GlobalAPI stored a replay for this run
func (r *Record) HasReplay() bool {
	return r.ReplayID != 0
}

// CreatedAt parses the GlobalAPI timestamp, which carries no zone
func (r *Record) CreatedAt() (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05", r.CreatedOn)
}

// RecordPair holds the best teleport and pro run for one query. Either slot
// may be nil when no record exists or the request failed. A zero place means
// the leaderboard position is unknown.
type RecordPair struct {
	TP  *Record
	Pro *Record

	TPPlace  int
	ProPlace int
}

// Empty reports whether both slots are absent
func (p RecordPair) Empty() bool {
	return p.TP == nil && p.Pro == nil
}

// WorldRecordHolder is one row of the world record count leaderboard
type WorldRecordHolder struct {
	SteamID64  string `json:"steamid64"`
	SteamID    string `json:"steam_id"`
	Count      int    `json:"count"`
	PlayerName string `json:"player_name"`
}

// RecordFilter says whether a map/course/mode combination accepts records
type RecordFilter struct {
	ID           int  `json:"id"`
	MapID        int  `json:"map_id"`
	Stage        int  `json:"stage"`
	ModeID       int  `json:"mode_id"`
	Tickrate     int  `json:"tickrate"`
	HasTeleports bool `json:"has_teleports"`
}

// MapDetails is the KZ:GO metadata for a map
type MapDetails struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Tier        int      `json:"tier"`
	WorkshopID  string   `json:"workshopId"`
	Bonuses     int      `json:"bonuses"`
	SP          bool     `json:"sp"`
	VP          bool     `json:"vp"`
	MapperNames []string `json:"mapperNames"`
	MapperIDs   []string `json:"mapperIds"`
	Date        string   `json:"date"`
}

// APIStatus is the relevant part of the GlobalAPI status page summary
type APIStatus struct {
	Status struct {
		Indicator   string `json:"indicator"`
		Description string `json:"description"`
	} `json:"status"`
	Components []struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"components"`
}
