package bot

import (
	"fmt"

	"schnose/bot/features/preferences"
	"schnose/models"

	"github.com/bwmarrin/discordgo"
)

var (
	minCourse = 1.0
	minTier   = 1.0
	maxTier   = 7.0
)

func runTypeOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "runtype",
		Description: "True for teleport runs, false for pro runs (default)",
	}
}

// modeChoices lists every mode, plus the "none" choice when clearing is allowed
func modeChoices(withNone bool) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.AllModes())+1)
	for _, mode := range models.AllModes() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  mode.Long(),
			Value: string(mode),
		})
	}
	if withNone {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  "None",
			Value: preferences.ModeNone,
		})
	}
	return choices
}

func mapOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "map",
		Description: "Map name, or any part of it",
		Required:    true,
	}
}

func modeOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "mode",
		Description: "Mode to look up (defaults to your /mode preference)",
		Choices:     modeChoices(false),
	}
}

func playerOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "player",
		Description: "@mention, SteamID or player name (defaults to you)",
	}
}

func courseOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "course",
		Description: "Bonus number (defaults to 1)",
		MinValue:    &minCourse,
	}
}

// Commands returns the slash command definitions registered with Discord
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check whether the bot is alive",
		},
		{
			Name:        "help",
			Description: "List all commands",
		},
		{
			Name:        "apistatus",
			Description: "Show the health of the GlobalAPI",
		},
		{
			Name:        "mode",
			Description: "Show, set or clear your preferred mode",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "mode",
					Description: "Mode to store; leave empty to show your current preference",
					Choices:     modeChoices(true),
				},
			},
		},
		{
			Name:        "setsteam",
			Description: "Link your SteamID so commands default to you",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "steam_id",
					Description: "Your SteamID, e.g. STEAM_1:1:161178172",
					Required:    true,
				},
			},
		},
		{
			Name:        "db",
			Description: "Show what is stored about you",
		},
		{
			Name:        "map",
			Description: "Show details about a map",
			Options:     []*discordgo.ApplicationCommandOption{mapOption()},
		},
		{
			Name:        "wr",
			Description: "World records on a map",
			Options:     []*discordgo.ApplicationCommandOption{mapOption(), modeOption()},
		},
		{
			Name:        "bwr",
			Description: "World records on a bonus",
			Options:     []*discordgo.ApplicationCommandOption{mapOption(), courseOption(), modeOption()},
		},
		{
			Name:        "pb",
			Description: "A player's personal bests on a map",
			Options:     []*discordgo.ApplicationCommandOption{mapOption(), modeOption(), playerOption()},
		},
		{
			Name:        "bpb",
			Description: "A player's personal bests on a bonus",
			Options:     []*discordgo.ApplicationCommandOption{mapOption(), courseOption(), modeOption(), playerOption()},
		},
		{
			Name:        "maptop",
			Description: "Top 10 runs on a map",
			Options:     []*discordgo.ApplicationCommandOption{mapOption(), modeOption(), runTypeOption()},
		},
		{
			Name:        "bmaptop",
			Description: "Top 10 runs on a bonus",
			Options:     []*discordgo.ApplicationCommandOption{mapOption(), courseOption(), modeOption(), runTypeOption()},
		},
		{
			Name:        "random",
			Description: "Pick a random global map",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "tier",
					Description: "Only pick maps of this tier",
					MinValue:    &minTier,
					MaxValue:    maxTier,
				},
			},
		},
		{
			Name:        "profile",
			Description: "A player's completions and points",
			Options:     []*discordgo.ApplicationCommandOption{playerOption(), modeOption()},
		},
		{
			Name:        "top",
			Description: "Top 100 world record holders",
			Options:     []*discordgo.ApplicationCommandOption{modeOption(), runTypeOption()},
		},
		{
			Name:        "btop",
			Description: "Top 100 bonus world record holders",
			Options:     []*discordgo.ApplicationCommandOption{modeOption(), runTypeOption()},
		},
		{
			Name:        "invite",
			Description: "Get a link to add the bot to your server",
		},
		{
			Name:        "nocrouch",
			Description: "Approximate the distance of a jump that missed its crouch",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "distance",
					Description: "Distance of the jump",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "max",
					Description: "Max speed of the jump",
					Required:    true,
				},
			},
		},
	}
}

// registerCommands registers all slash commands with Discord. An empty guild
// id registers them globally.
func (b *Bot) registerCommands() error {
	for _, cmd := range Commands() {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}
	return nil
}
