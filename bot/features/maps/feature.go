package maps

import (
	"context"
	"fmt"

	"schnose/bot/common"
	"schnose/service"

	"github.com/bwmarrin/discordgo"
)

// Feature serves /map and /random
type Feature struct {
	maps    service.MapResolver
	mapInfo service.MapService
}

// NewFeature creates a new maps feature instance
func NewFeature(maps service.MapResolver, mapInfo service.MapService) *Feature {
	return &Feature{
		maps:    maps,
		mapInfo: mapInfo,
	}
}

// HandleCommand handles /map and /random
func (f *Feature) HandleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	opts := common.ParseOptions(data.Options)

	if err := common.DeferResponse(s, i, false); err != nil {
		return fmt.Errorf("failed to defer /%s: %w", data.Name, err)
	}

	switch data.Name {
	case "map":
		embed, err := f.describe(ctx, opts)
		if err != nil {
			return common.HandleError(s, i, err, true)
		}
		return common.FollowUpWithEmbed(s, i, embed)

	case "random":
		content, err := f.random(ctx, opts)
		if err != nil {
			return common.HandleError(s, i, err, true)
		}
		return common.FollowUpWithText(s, i, content)
	}

	return nil
}

func (f *Feature) describe(ctx context.Context, opts common.Options) (*discordgo.MessageEmbed, error) {
	entry, err := f.maps.Resolve(ctx, opts.StringOr("map", ""))
	if err != nil {
		return nil, err
	}
	return buildMapEmbed(f.mapInfo.Describe(ctx, entry)), nil
}

func (f *Feature) random(ctx context.Context, opts common.Options) (string, error) {
	entry, err := f.mapInfo.Random(ctx, opts.Int("tier"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("🎲 `%s (T%d)`", entry.Name, entry.Difficulty), nil
}
