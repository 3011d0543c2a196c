package records

import (
	"context"
	"fmt"

	"schnose/bot/common"
	"schnose/service"

	"github.com/bwmarrin/discordgo"
)

// Feature serves the record commands: wr, bwr, pb, bpb, maptop and bmaptop
type Feature struct {
	maps    service.MapResolver
	modes   service.ModeResolver
	targets service.TargetResolver
	records service.RecordAggregator
	mapInfo service.MapService
}

// NewFeature creates a new records feature instance
func NewFeature(maps service.MapResolver, modes service.ModeResolver, targets service.TargetResolver, records service.RecordAggregator, mapInfo service.MapService) *Feature {
	return &Feature{
		maps:    maps,
		modes:   modes,
		targets: targets,
		records: records,
		mapInfo: mapInfo,
	}
}

// HandleCommand answers every record command with a deferred reply
func (f *Feature) HandleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	opts := common.ParseOptions(data.Options)
	invokerID := common.InvokerID(i)

	if err := common.DeferResponse(s, i, false); err != nil {
		return fmt.Errorf("failed to defer /%s: %w", data.Name, err)
	}

	var embed *discordgo.MessageEmbed
	var err error

	switch data.Name {
	case "wr":
		embed, err = f.worldRecords(ctx, invokerID, opts, false)
	case "bwr":
		embed, err = f.worldRecords(ctx, invokerID, opts, true)
	case "pb":
		embed, err = f.personalBests(ctx, invokerID, opts, false)
	case "bpb":
		embed, err = f.personalBests(ctx, invokerID, opts, true)
	case "maptop":
		embed, err = f.mapTop(ctx, invokerID, opts, false)
	case "bmaptop":
		embed, err = f.mapTop(ctx, invokerID, opts, true)
	default:
		return nil
	}

	if err != nil {
		return common.HandleError(s, i, err, true)
	}
	return common.FollowUpWithEmbed(s, i, embed)
}
