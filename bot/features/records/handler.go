package records

import (
	"context"

	"schnose/bot/common"
	"schnose/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// lookup is the resolved map, course and mode shared by every record command
type lookup struct {
	entry  *models.MapEntry
	course int
	mode   models.Mode
}

// resolveLookup resolves the map first, then the bonus course, then the mode
func (f *Feature) resolveLookup(ctx context.Context, invokerID int64, opts common.Options, bonus bool) (*lookup, error) {
	entry, err := f.maps.Resolve(ctx, opts.StringOr("map", ""))
	if err != nil {
		return nil, err
	}

	course := 0
	if bonus {
		course = 1
		if c := opts.Int("course"); c != nil {
			course = *c
		}
		if err := f.mapInfo.ValidateCourse(ctx, entry.Name, course); err != nil {
			return nil, err
		}
	}

	mode, err := f.modes.Resolve(ctx, opts.Mode("mode"), invokerID)
	if err != nil {
		return nil, err
	}

	return &lookup{entry: entry, course: course, mode: mode}, nil
}

func (f *Feature) worldRecords(ctx context.Context, invokerID int64, opts common.Options, bonus bool) (*discordgo.MessageEmbed, error) {
	l, err := f.resolveLookup(ctx, invokerID, opts, bonus)
	if err != nil {
		return nil, err
	}

	pair := f.records.WorldRecords(ctx, l.entry.Name, l.mode, l.course)

	log.WithFields(log.Fields{
		"map":    l.entry.Name,
		"mode":   l.mode,
		"course": l.course,
		"empty":  pair.Empty(),
	}).Debug("Fetched world records")

	return buildRecordEmbed(recordEmbedParams{
		label:    "WR",
		entry:    l.entry,
		mode:     l.mode,
		course:   l.course,
		pair:     pair,
		showName: true,
	}), nil
}

func (f *Feature) personalBests(ctx context.Context, invokerID int64, opts common.Options, bonus bool) (*discordgo.MessageEmbed, error) {
	l, err := f.resolveLookup(ctx, invokerID, opts, bonus)
	if err != nil {
		return nil, err
	}

	target, err := f.targets.Resolve(ctx, opts.String("player"), invokerID)
	if err != nil {
		return nil, err
	}

	pair := f.records.PersonalBests(ctx, target.SteamID, l.entry.Name, l.mode, l.course)
	pair = f.records.WithPlaces(ctx, pair)

	log.WithFields(log.Fields{
		"map":         l.entry.Name,
		"mode":        l.mode,
		"course":      l.course,
		"steam_id":    target.SteamID,
		"target_kind": target.Kind,
		"empty":       pair.Empty(),
	}).Debug("Fetched personal bests")

	return buildRecordEmbed(recordEmbedParams{
		label:  "PB",
		player: playerName(target, pair),
		entry:  l.entry,
		mode:   l.mode,
		course: l.course,
		pair:   pair,
	}), nil
}

func (f *Feature) mapTop(ctx context.Context, invokerID int64, opts common.Options, bonus bool) (*discordgo.MessageEmbed, error) {
	l, err := f.resolveLookup(ctx, invokerID, opts, bonus)
	if err != nil {
		return nil, err
	}

	teleports := false
	if runType := opts.Bool("runtype"); runType != nil {
		teleports = *runType
	}

	records, err := f.mapInfo.Leaderboard(ctx, l.entry.Name, l.mode, l.course, teleports, common.LeaderboardSize)
	if err != nil {
		return nil, err
	}

	return buildLeaderboardEmbed(l.entry, l.mode, l.course, teleports, records), nil
}

// playerName prefers the name the API reports on the runs themselves
func playerName(target *models.TargetResolution, pair models.RecordPair) string {
	for _, record := range []*models.Record{pair.Pro, pair.TP} {
		if record != nil && record.PlayerName != "" {
			return record.PlayerName
		}
	}
	if target.Name != "" {
		return target.Name
	}
	return target.SteamID
}
