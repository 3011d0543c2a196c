package service

import (
	"context"

	"schnose/kzapi"
	"schnose/models"

	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

// RecordQuery selects the runs to aggregate. An empty SteamID means the map's
// top runs; a nil RunType queries both the teleport and the pro slot.
type RecordQuery struct {
	SteamID string
	MapName string
	Mode    models.Mode
	Course  int
	// RunType restricts the query to teleport (true) or pro (false) runs
	RunType *bool
}

type recordAggregator struct {
	api      GlobalAPI
	observer SlotObserver
}

// NewRecordAggregator creates a record aggregator. observer may be nil.
func NewRecordAggregator(api GlobalAPI, observer SlotObserver) RecordAggregator {
	return &recordAggregator{api: api, observer: observer}
}

func (a *recordAggregator) WorldRecords(ctx context.Context, mapName string, mode models.Mode, course int) models.RecordPair {
	return a.Records(ctx, RecordQuery{MapName: mapName, Mode: mode, Course: course})
}

func (a *recordAggregator) PersonalBests(ctx context.Context, steamID, mapName string, mode models.Mode, course int) models.RecordPair {
	return a.Records(ctx, RecordQuery{SteamID: steamID, MapName: mapName, Mode: mode, Course: course})
}

// Records issues one records/top request per requested slot concurrently.
// A failed slot is logged and left nil; the pair itself never fails.
func (a *recordAggregator) Records(ctx context.Context, q RecordQuery) models.RecordPair {
	var pair models.RecordPair
	var wg conc.WaitGroup

	if q.RunType == nil || *q.RunType {
		wg.Go(func() {
			pair.TP = a.fetchSlot(ctx, q, true)
		})
	}
	if q.RunType == nil || !*q.RunType {
		wg.Go(func() {
			pair.Pro = a.fetchSlot(ctx, q, false)
		})
	}

	wg.Wait()
	return pair
}

func (a *recordAggregator) fetchSlot(ctx context.Context, q RecordQuery, teleports bool) *models.Record {
	runType := runTypeName(teleports)

	records, err := a.api.TopRecords(ctx, kzapi.TopRecordsQuery{
		MapName:      q.MapName,
		Mode:         q.Mode,
		Course:       q.Course,
		HasTeleports: teleports,
		SteamID:      q.SteamID,
		Limit:        1,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"map":      q.MapName,
			"mode":     q.Mode,
			"course":   q.Course,
			"run_type": runType,
			"steam_id": q.SteamID,
		}).WithError(err).Warn("Record slot unavailable")
		records = nil
	}

	var record *models.Record
	if len(records) > 0 {
		record = &records[0]
	}

	if a.observer != nil {
		a.observer.ObserveSlot(runType, record != nil)
	}
	return record
}

// WithPlaces fills in the leaderboard position of each present slot, one
// request after the other. A failed lookup leaves the place unknown.
func (a *recordAggregator) WithPlaces(ctx context.Context, pair models.RecordPair) models.RecordPair {
	if pair.TP != nil {
		pair.TPPlace = a.place(ctx, pair.TP)
	}
	if pair.Pro != nil {
		pair.ProPlace = a.place(ctx, pair.Pro)
	}
	return pair
}

func (a *recordAggregator) place(ctx context.Context, record *models.Record) int {
	place, err := a.api.RecordPlace(ctx, record.ID)
	if err != nil {
		log.WithFields(log.Fields{
			"record_id": record.ID,
			"map":       record.MapName,
		}).WithError(err).Warn("Record place unavailable")
		return 0
	}
	return place
}

func runTypeName(teleports bool) string {
	if teleports {
		return "tp"
	}
	return "pro"
}
