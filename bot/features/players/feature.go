package players

import (
	"context"
	"fmt"

	"schnose/bot/common"
	"schnose/service"

	"github.com/bwmarrin/discordgo"
)

// Feature serves the player summary commands: profile, top and btop
type Feature struct {
	modes   service.ModeResolver
	targets service.TargetResolver
	players service.PlayerService
}

// NewFeature creates a new players feature instance
func NewFeature(modes service.ModeResolver, targets service.TargetResolver, players service.PlayerService) *Feature {
	return &Feature{
		modes:   modes,
		targets: targets,
		players: players,
	}
}

// HandleCommand answers every player command with a deferred reply
func (f *Feature) HandleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	opts := common.ParseOptions(data.Options)
	invokerID := common.InvokerID(i)

	if err := common.DeferResponse(s, i, false); err != nil {
		return fmt.Errorf("failed to defer /%s: %w", data.Name, err)
	}

	var embeds []*discordgo.MessageEmbed
	var err error

	switch data.Name {
	case "profile":
		var embed *discordgo.MessageEmbed
		embed, err = f.profile(ctx, invokerID, opts)
		embeds = []*discordgo.MessageEmbed{embed}
	case "top":
		embeds, err = f.worldRecordHolders(ctx, invokerID, opts, false)
	case "btop":
		embeds, err = f.worldRecordHolders(ctx, invokerID, opts, true)
	default:
		return nil
	}

	if err != nil {
		return common.HandleError(s, i, err, true)
	}
	return common.FollowUpWithEmbeds(s, i, embeds)
}
