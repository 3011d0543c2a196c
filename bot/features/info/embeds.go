package info

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"schnose/bot/common"
	"schnose/models"

	"github.com/bwmarrin/discordgo"
)

func buildHelpEmbed(commands []*discordgo.ApplicationCommand) *discordgo.MessageEmbed {
	sorted := make([]*discordgo.ApplicationCommand, len(commands))
	copy(sorted, commands)
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].Name < sorted[b].Name
	})

	var sb strings.Builder
	for _, cmd := range sorted {
		sb.WriteString(fmt.Sprintf("`/%s` %s\n", cmd.Name, cmd.Description))
	}

	return &discordgo.MessageEmbed{
		Title:       "Commands",
		Description: sb.String(),
		Color:       common.ColorPrimary,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Set /mode and /setsteam once and most options become optional.",
		},
	}
}

// statusColor maps the status page indicator to an embed color
func statusColor(indicator string) int {
	switch indicator {
	case "none":
		return common.ColorSuccess
	case "minor":
		return common.ColorWarning
	default:
		return common.ColorError
	}
}

func buildStatusEmbed(status *models.APIStatus) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(status.Components))
	for _, component := range status.Components {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   component.Name,
			Value:  strings.ReplaceAll(component.Status, "_", " "),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:     status.Status.Description,
		URL:       "https://status.global-api.com/",
		Color:     statusColor(status.Status.Indicator),
		Fields:    fields,
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "GlobalAPI status",
		},
	}
}
