package players

import (
	"context"

	"schnose/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// profile resolves the mode before the player, so a missing mode is reported
// without a player lookup
func (f *Feature) profile(ctx context.Context, invokerID int64, opts common.Options) (*discordgo.MessageEmbed, error) {
	mode, err := f.modes.Resolve(ctx, opts.Mode("mode"), invokerID)
	if err != nil {
		return nil, err
	}

	target, err := f.targets.Resolve(ctx, opts.String("player"), invokerID)
	if err != nil {
		return nil, err
	}

	profile, err := f.players.Profile(ctx, target.SteamID, mode)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"steam_id":    target.SteamID,
		"target_kind": target.Kind,
		"mode":        mode,
		"tp":          profile.TP.Completions,
		"pro":         profile.Pro.Completions,
	}).Debug("Built player profile")

	return buildProfileEmbed(profile), nil
}

func (f *Feature) worldRecordHolders(ctx context.Context, invokerID int64, opts common.Options, bonuses bool) ([]*discordgo.MessageEmbed, error) {
	mode, err := f.modes.Resolve(ctx, opts.Mode("mode"), invokerID)
	if err != nil {
		return nil, err
	}

	teleports := false
	if runType := opts.Bool("runtype"); runType != nil {
		teleports = *runType
	}

	holders, err := f.players.WorldRecordHolders(ctx, mode, teleports, bonuses)
	if err != nil {
		return nil, err
	}

	return buildHolderEmbeds(mode, teleports, bonuses, holders), nil
}
