package maps

import (
	"fmt"
	"strings"
	"time"

	"schnose/bot/common"
	"schnose/kzapi"
	"schnose/models"
	"schnose/service"

	"github.com/bwmarrin/discordgo"
)

const steamProfileURL = "https://steamcommunity.com/profiles/"

func buildMapEmbed(info *service.MapInfo) *discordgo.MessageEmbed {
	entry := info.Entry

	embed := &discordgo.MessageEmbed{
		Title: entry.Name,
		URL:   kzapi.MapURL(entry.Name),
		Color: common.ColorPrimary,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: kzapi.MapThumbnailURL(entry.Name),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	tier := entry.Difficulty
	var lines []string

	if details := info.Details; details != nil {
		if details.Tier > 0 {
			tier = details.Tier
		}
		if mappers := formatMappers(details); mappers != "" {
			lines = append(lines, "Mapper(s): "+mappers)
		}
		lines = append(lines, fmt.Sprintf("Bonuses: %d", details.Bonuses))
		if details.Date != "" {
			if date, err := time.Parse(time.RFC3339, details.Date); err == nil {
				lines = append(lines, "Global date: "+common.FormatDiscordTimestamp(date, "D"))
			}
		}
		if details.WorkshopID != "" {
			lines = append(lines, fmt.Sprintf("[Workshop](%s)", kzapi.WorkshopURL(details.WorkshopID)))
		}
	}

	lines = append([]string{fmt.Sprintf("Tier: %d", tier)}, lines...)

	if info.Filters != nil {
		var filters []string
		for _, mode := range models.AllModes() {
			filters = append(filters, fmt.Sprintf("%s %s", mode.Short(), common.CheckMark(info.Filters[mode])))
		}
		lines = append(lines, "Filters: "+strings.Join(filters, " | "))
	}

	embed.Description = strings.Join(lines, "\n")
	return embed
}

// formatMappers links each mapper to their Steam profile when KZ:GO has the id
func formatMappers(details *models.MapDetails) string {
	mappers := make([]string, 0, len(details.MapperNames))
	for i, name := range details.MapperNames {
		if i < len(details.MapperIDs) && details.MapperIDs[i] != "" {
			mappers = append(mappers, fmt.Sprintf("[%s](%s%s)", name, steamProfileURL, details.MapperIDs[i]))
			continue
		}
		mappers = append(mappers, name)
	}
	return strings.Join(mappers, ", ")
}
