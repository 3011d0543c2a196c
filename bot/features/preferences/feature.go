package preferences

import (
	"context"
	"fmt"

	"schnose/bot/common"
	"schnose/service"

	"github.com/bwmarrin/discordgo"
)

// ModeNone is the mode choice that clears the stored preference
const ModeNone = "none"

// Feature serves the commands that read and write stored preferences
type Feature struct {
	preferences service.PreferenceService
}

// NewFeature creates a new preferences feature instance
func NewFeature(preferences service.PreferenceService) *Feature {
	return &Feature{
		preferences: preferences,
	}
}

// HandleCommand answers /mode, /setsteam and /db
func (f *Feature) HandleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	opts := common.ParseOptions(data.Options)
	invokerID := common.InvokerID(i)
	name := common.InvokerName(i)

	switch data.Name {
	case "mode":
		content, err := f.mode(ctx, invokerID, name, opts)
		if err != nil {
			return common.HandleError(s, i, err, false)
		}
		return common.RespondWithText(s, i, content, false)

	case "setsteam":
		if err := common.DeferResponse(s, i, true); err != nil {
			return fmt.Errorf("failed to defer /setsteam: %w", err)
		}
		content, err := f.setSteam(ctx, invokerID, name, opts)
		if err != nil {
			return common.HandleError(s, i, err, true)
		}
		common.FollowUpWithSuccess(s, i, content)
		return nil

	case "db":
		embed, err := f.databaseEntry(ctx, invokerID)
		if err != nil {
			return common.HandleError(s, i, err, false)
		}
		return common.RespondWithEmbed(s, i, embed, true)
	}

	return nil
}
