package preferences

import (
	"context"
	"fmt"
	"time"

	"schnose/bot/common"
	"schnose/models"

	"github.com/bwmarrin/discordgo"
)

func (f *Feature) databaseEntry(ctx context.Context, invokerID int64) (*discordgo.MessageEmbed, error) {
	user, err := f.preferences.Get(ctx, invokerID)
	if err != nil {
		return nil, err
	}
	return buildDatabaseEmbed(invokerID, user), nil
}

// buildDatabaseEmbed shows the invoker everything stored about them
func buildDatabaseEmbed(invokerID int64, user *models.User) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     "Your database entry",
		Color:     common.ColorInfo,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if user == nil {
		embed.Description = "You have no database entry yet. Use `/setsteam` or `/mode` to create one."
		return embed
	}

	steamID := "none"
	if user.HasSteamID() {
		steamID = fmt.Sprintf("`%s`", *user.SteamID)
	}
	mode := "none"
	if user.HasMode() {
		mode = user.Mode.Long()
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Discord", Value: common.GetUserMention(invokerID), Inline: true},
		{Name: "Name", Value: user.Name, Inline: true},
		{Name: "SteamID", Value: steamID, Inline: true},
		{Name: "Mode", Value: mode, Inline: true},
	}
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: "Last updated",
	}
	embed.Timestamp = user.UpdatedAt.Format(time.RFC3339)

	return embed
}
