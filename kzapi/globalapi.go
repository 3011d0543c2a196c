package kzapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"schnose/models"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// DefaultGlobalAPIURL is the public GlobalAPI v2 base
const DefaultGlobalAPIURL = "https://kztimerglobal.com/api/v2.0/"

// Only 128 tick records are global
const globalTickrate = 128

// TopRecordsQuery parameterizes records/top. An empty SteamID asks for the
// map's top times; a set SteamID asks for that player's best. An empty
// MapName spans every map.
type TopRecordsQuery struct {
	MapName      string
	Mode         models.Mode
	Course       int
	HasTeleports bool
	SteamID      string
	Limit        int
}

// GlobalAPI is a client for the KZ GlobalAPI
type GlobalAPI struct {
	requester
}

// NewGlobalAPI creates a GlobalAPI client. observer may be nil.
func NewGlobalAPI(baseURL string, timeout time.Duration, observer Observer) *GlobalAPI {
	return &GlobalAPI{requester: newRequester("global_api", baseURL, timeout, observer)}
}

// Maps returns the validated map catalog in API order. Entries without an id
// or a name are skipped.
func (c *GlobalAPI) Maps(ctx context.Context) ([]models.MapEntry, error) {
	var maps []models.MapEntry
	err := c.get(ctx, "maps", "maps", &maps, func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"is_validated": "true",
			"limit":        "9999",
		})
	})
	if err != nil {
		return nil, err
	}

	valid := make([]models.MapEntry, 0, len(maps))
	for i, m := range maps {
		if m.Name == "" || m.ID == 0 {
			log.WithFields(log.Fields{
				"index": i,
				"id":    m.ID,
				"name":  m.Name,
			}).Warn("Skipping malformed map entry")
			continue
		}
		valid = append(valid, m)
	}

	if len(valid) == 0 {
		return nil, fmt.Errorf("empty map catalog: %w", ErrMalformedPayload)
	}

	return valid, nil
}

// PlayerByName returns the first player whose name matches, or nil if none
func (c *GlobalAPI) PlayerByName(ctx context.Context, name string) (*models.Player, error) {
	var players []models.Player
	err := c.get(ctx, "players", "players", &players, func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"name":  name,
			"limit": "1",
		})
	})
	if err != nil {
		return nil, err
	}

	return firstPlayer(players)
}

// PlayerBySteamID returns the player for steamID, or nil if the API has never
// seen it
func (c *GlobalAPI) PlayerBySteamID(ctx context.Context, steamID string) (*models.Player, error) {
	var players []models.Player
	err := c.get(ctx, "players_steamid", "players/steamid/{steam_id}", &players, func(r *resty.Request) {
		r.SetPathParam("steam_id", steamID)
	})
	if err != nil {
		return nil, err
	}

	return firstPlayer(players)
}

func firstPlayer(players []models.Player) (*models.Player, error) {
	if len(players) == 0 {
		return nil, nil
	}
	if players[0].SteamID == "" {
		return nil, fmt.Errorf("player without steam_id: %w", ErrMalformedPayload)
	}
	return &players[0], nil
}

// TopRecords returns the fastest runs matching q, best first
func (c *GlobalAPI) TopRecords(ctx context.Context, q TopRecordsQuery) ([]models.Record, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 1
	}

	params := map[string]string{
		"tickrate":          strconv.Itoa(globalTickrate),
		"stage":             strconv.Itoa(q.Course),
		"modes_list_string": string(q.Mode),
		"has_teleports":     strconv.FormatBool(q.HasTeleports),
		"limit":             strconv.Itoa(limit),
	}
	if q.MapName != "" {
		params["map_name"] = q.MapName
	}
	if q.SteamID != "" {
		params["steam_id"] = q.SteamID
	}

	var records []models.Record
	err := c.get(ctx, "records_top", "records/top", &records, func(r *resty.Request) {
		r.SetQueryParams(params)
	})
	if err != nil {
		return nil, err
	}

	for i := range records {
		if err := validateRecord(&records[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return records, nil
}

// RecordPlace returns the leaderboard position of a record, 1 being the best
func (c *GlobalAPI) RecordPlace(ctx context.Context, recordID int) (int, error) {
	var place int
	err := c.get(ctx, "records_place", "records/place/{id}", &place, func(r *resty.Request) {
		r.SetPathParam("id", strconv.Itoa(recordID))
	})
	if err != nil {
		return 0, err
	}
	if place <= 0 {
		return 0, fmt.Errorf("place %d for record %d: %w", place, recordID, ErrMalformedPayload)
	}
	return place, nil
}

// MaxWorldRecordHolders is the longest world record leaderboard the API serves
const MaxWorldRecordHolders = 100

// WorldRecordHolders ranks players by world record count. bonuses counts bonus
// courses instead of main courses.
func (c *GlobalAPI) WorldRecordHolders(ctx context.Context, mode models.Mode, teleports, bonuses bool) ([]models.WorldRecordHolder, error) {
	params := url.Values{}
	if bonuses {
		for course := 1; course <= 100; course++ {
			params.Add("stages", strconv.Itoa(course))
		}
	} else {
		params.Set("stages", "0")
	}
	params.Set("mode_ids", strconv.Itoa(mode.ID()))
	params.Set("tickrates", strconv.Itoa(globalTickrate))
	params.Set("has_teleports", strconv.FormatBool(teleports))
	params.Set("limit", strconv.Itoa(MaxWorldRecordHolders))

	var holders []models.WorldRecordHolder
	err := c.get(ctx, "records_world_records", "records/top/world_records", &holders, func(r *resty.Request) {
		r.SetQueryParamsFromValues(params)
	})
	if err != nil {
		return nil, err
	}

	for i, h := range holders {
		if h.SteamID == "" || h.Count <= 0 {
			return nil, fmt.Errorf("holder %d: %w", i, ErrMalformedPayload)
		}
	}
	return holders, nil
}

// RecordFilters returns which modes and run types accept records on the
// given map course
func (c *GlobalAPI) RecordFilters(ctx context.Context, mapID, course int) ([]models.RecordFilter, error) {
	var filters []models.RecordFilter
	err := c.get(ctx, "record_filters", "record_filters", &filters, func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"map_ids":       strconv.Itoa(mapID),
			"stages":        strconv.Itoa(course),
			"tickrates":     strconv.Itoa(globalTickrate),
			"has_teleports": "false",
			"limit":         "9999",
		})
	})
	if err != nil {
		return nil, err
	}

	return filters, nil
}

func validateRecord(r *models.Record) error {
	switch {
	case r.ID == 0:
		return fmt.Errorf("missing id: %w", ErrMalformedPayload)
	case r.SteamID == "":
		return fmt.Errorf("missing steam_id: %w", ErrMalformedPayload)
	case r.MapName == "":
		return fmt.Errorf("missing map_name: %w", ErrMalformedPayload)
	case r.Time <= 0:
		return fmt.Errorf("non-positive time %v: %w", r.Time, ErrMalformedPayload)
	case !r.Mode.IsValid():
		return fmt.Errorf("unknown mode %q: %w", r.Mode, ErrMalformedPayload)
	}
	return nil
}

// ReplayURL is the download link for a stored replay
func ReplayURL(replayID int) string {
	return fmt.Sprintf("https://kztimerglobal.com/api/v2/records/replay/%d", replayID)
}
