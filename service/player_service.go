package service

import (
	"context"

	"schnose/kzapi"
	"schnose/models"

	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

// Tiers is the number of map difficulty tiers
const Tiers = 7

// Points awarded for a world record
const worldRecordPoints = 1000

// Large enough to cover a player's whole history in one request
const profileRecordLimit = 9999

// RunTypeSummary counts one player's finished maps for a single run type
type RunTypeSummary struct {
	Completions  int
	Points       int
	WorldRecords int
	// ByTier counts completions per tier, index 0 being tier 1
	ByTier [Tiers]int
}

// PlayerProfile is everything the profile command renders
type PlayerProfile struct {
	Player *models.Player
	Mode   models.Mode
	TP     RunTypeSummary
	Pro    RunTypeSummary
	// MapsByTier counts the global maps per tier, index 0 being tier 1
	MapsByTier [Tiers]int
	TotalMaps  int
}

// TotalPoints sums the points of both run types
func (p *PlayerProfile) TotalPoints() int {
	return p.TP.Points + p.Pro.Points
}

type playerService struct {
	api GlobalAPI
}

// NewPlayerService creates a player service
func NewPlayerService(api GlobalAPI) PlayerService {
	return &playerService{api: api}
}

func (s *playerService) Profile(ctx context.Context, steamID string, mode models.Mode) (*PlayerProfile, error) {
	player, err := s.api.PlayerBySteamID(ctx, steamID)
	if err != nil {
		return nil, remoteAPIError("GlobalAPI", err)
	}
	if player == nil {
		return nil, playerNotFoundError(steamID, nil)
	}

	catalog, err := s.api.Maps(ctx)
	if err != nil {
		return nil, remoteAPIError("GlobalAPI", err)
	}

	var tp, pro []models.Record
	var wg conc.WaitGroup
	wg.Go(func() {
		tp = s.playerRecords(ctx, player.SteamID, mode, true)
	})
	wg.Go(func() {
		pro = s.playerRecords(ctx, player.SteamID, mode, false)
	})
	wg.Wait()

	if len(tp) == 0 && len(pro) == 0 {
		return nil, noRecordsError(player.Name, mode)
	}

	tiers := make(map[string]int, len(catalog))
	profile := &PlayerProfile{Player: player, Mode: mode}
	for _, entry := range catalog {
		if entry.Difficulty < 1 || entry.Difficulty > Tiers {
			continue
		}
		tiers[entry.Name] = entry.Difficulty
		profile.MapsByTier[entry.Difficulty-1]++
		profile.TotalMaps++
	}

	profile.TP = summarize(tp, tiers)
	profile.Pro = summarize(pro, tiers)
	return profile, nil
}

func (s *playerService) playerRecords(ctx context.Context, steamID string, mode models.Mode, teleports bool) []models.Record {
	records, err := s.api.TopRecords(ctx, kzapi.TopRecordsQuery{
		Mode:         mode,
		HasTeleports: teleports,
		SteamID:      steamID,
		Limit:        profileRecordLimit,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"steam_id": steamID,
			"mode":     mode,
			"run_type": runTypeName(teleports),
		}).WithError(err).Warn("Player records unavailable")
		return nil
	}
	return records
}

// summarize counts each global map once. Records on maps outside the catalog
// are ignored.
func summarize(records []models.Record, tiers map[string]int) RunTypeSummary {
	var summary RunTypeSummary
	seen := make(map[string]bool, len(records))

	for _, record := range records {
		tier, ok := tiers[record.MapName]
		if !ok || seen[record.MapName] {
			continue
		}
		seen[record.MapName] = true

		summary.Completions++
		summary.ByTier[tier-1]++
		summary.Points += record.Points
		if record.Points == worldRecordPoints {
			summary.WorldRecords++
		}
	}
	return summary
}

func (s *playerService) WorldRecordHolders(ctx context.Context, mode models.Mode, teleports, bonuses bool) ([]models.WorldRecordHolder, error) {
	holders, err := s.api.WorldRecordHolders(ctx, mode, teleports, bonuses)
	if err != nil {
		return nil, remoteAPIError("GlobalAPI", err)
	}
	return holders, nil
}
