package service

import (
	"context"
	"math/rand/v2"

	"schnose/kzapi"
	"schnose/models"

	log "github.com/sirupsen/logrus"
)

// MapInfo is everything the map command renders
type MapInfo struct {
	Entry   *models.MapEntry
	Details *models.MapDetails
	// Filters says which modes accept pro records on the main course
	Filters map[models.Mode]bool
}

type mapService struct {
	api      GlobalAPI
	metadata MapMetadataAPI
	// intn picks an index in [0, n)
	intn func(n int) int
}

// NewMapService creates a map service
func NewMapService(api GlobalAPI, metadata MapMetadataAPI) MapService {
	return &mapService{api: api, metadata: metadata, intn: rand.IntN}
}

func (s *mapService) Describe(ctx context.Context, entry *models.MapEntry) *MapInfo {
	info := &MapInfo{Entry: entry}

	details, err := s.metadata.MapDetails(ctx, entry.Name)
	if err != nil {
		log.WithField("map", entry.Name).WithError(err).Warn("KZ:GO metadata unavailable")
	} else {
		info.Details = details
	}

	filters, err := s.api.RecordFilters(ctx, entry.ID, 0)
	if err != nil {
		log.WithField("map", entry.Name).WithError(err).Warn("Record filters unavailable")
		return info
	}

	info.Filters = make(map[models.Mode]bool, len(models.AllModes()))
	for _, mode := range models.AllModes() {
		info.Filters[mode] = false
	}
	for _, filter := range filters {
		if mode, ok := models.ModeFromID(filter.ModeID); ok {
			info.Filters[mode] = true
		}
	}

	return info
}

func (s *mapService) ValidateCourse(ctx context.Context, mapName string, course int) error {
	details, err := s.metadata.MapDetails(ctx, mapName)
	if err != nil {
		return remoteAPIError("KZ:GO", err)
	}

	if course < 1 || course > details.Bonuses {
		return invalidCourseError(mapName, course, details.Bonuses)
	}
	return nil
}

func (s *mapService) Leaderboard(ctx context.Context, mapName string, mode models.Mode, course int, teleports bool, limit int) ([]models.Record, error) {
	records, err := s.api.TopRecords(ctx, kzapi.TopRecordsQuery{
		MapName:      mapName,
		Mode:         mode,
		Course:       course,
		HasTeleports: teleports,
		Limit:        limit,
	})
	if err != nil {
		return nil, remoteAPIError("GlobalAPI", err)
	}
	return records, nil
}

func (s *mapService) Random(ctx context.Context, tier *int) (*models.MapEntry, error) {
	catalog, err := s.api.Maps(ctx)
	if err != nil {
		return nil, remoteAPIError("GlobalAPI", err)
	}

	candidates := catalog
	if tier != nil {
		candidates = make([]models.MapEntry, 0, len(catalog))
		for _, entry := range catalog {
			if entry.Difficulty == *tier {
				candidates = append(candidates, entry)
			}
		}
	}
	if len(candidates) == 0 {
		return nil, noMapsForTierError(tier)
	}

	entry := candidates[s.intn(len(candidates))]
	return &entry, nil
}

type statusService struct {
	api StatusAPI
}

// NewStatusService creates a status service
func NewStatusService(api StatusAPI) StatusService {
	return &statusService{api: api}
}

func (s *statusService) Check(ctx context.Context) (*models.APIStatus, error) {
	status, err := s.api.Summary(ctx)
	if err != nil {
		return nil, remoteAPIError("Status page", err)
	}
	return status, nil
}
