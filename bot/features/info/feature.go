package info

import (
	"context"
	"fmt"

	"schnose/bot/common"
	"schnose/service"

	"github.com/bwmarrin/discordgo"
)

// InviteURL is where the bot can be added to a server
const InviteURL = "https://bot.schnose.eu/"

// Feature serves /ping, /help, /apistatus, /invite and /nocrouch
type Feature struct {
	status   service.StatusService
	commands []*discordgo.ApplicationCommand
}

// NewFeature creates a new info feature instance. commands is what /help lists.
func NewFeature(status service.StatusService, commands []*discordgo.ApplicationCommand) *Feature {
	return &Feature{
		status:   status,
		commands: commands,
	}
}

// HandleCommand answers the informational commands
func (f *Feature) HandleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	switch i.ApplicationCommandData().Name {
	case "ping":
		return common.RespondWithText(s, i, pingMessage(s.HeartbeatLatency().Milliseconds()), false)

	case "help":
		return common.RespondWithEmbed(s, i, buildHelpEmbed(f.commands), true)

	case "apistatus":
		if err := common.DeferResponse(s, i, false); err != nil {
			return fmt.Errorf("failed to defer /apistatus: %w", err)
		}
		embed, err := f.apiStatus(ctx)
		if err != nil {
			return common.HandleError(s, i, err, true)
		}
		return common.FollowUpWithEmbed(s, i, embed)

	case "invite":
		return common.RespondWithText(s, i, InviteURL, true)

	case "nocrouch":
		opts := common.ParseOptions(i.ApplicationCommandData().Options)
		content, err := noCrouch(opts)
		if err != nil {
			return common.HandleError(s, i, err, false)
		}
		return common.RespondWithText(s, i, content, false)
	}

	return nil
}

// noCrouch estimates the distance a jump would have reached with a crouch at
// the end, from its uncrouched distance and max speed
func noCrouch(opts common.Options) (string, error) {
	distance := opts.Float("distance")
	maxSpeed := opts.Float("max")
	if distance == nil || maxSpeed == nil {
		return "", common.NewUserError("Please provide both the distance and the max speed.", "missing nocrouch option")
	}

	approx := *distance + (*maxSpeed/128)*4
	return fmt.Sprintf("Approximated distance: `%.4f`", approx), nil
}

func (f *Feature) apiStatus(ctx context.Context) (*discordgo.MessageEmbed, error) {
	status, err := f.status.Check(ctx)
	if err != nil {
		return nil, err
	}
	return buildStatusEmbed(status), nil
}

func pingMessage(latencyMillis int64) string {
	return fmt.Sprintf("Pong! 🏓 (heartbeat %dms)", latencyMillis)
}
