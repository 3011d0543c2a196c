package records

import (
	"fmt"
	"strings"
	"time"

	"schnose/bot/common"
	"schnose/kzapi"
	"schnose/models"

	"github.com/bwmarrin/discordgo"
)

type recordEmbedParams struct {
	label  string // WR or PB
	player string
	entry  *models.MapEntry
	mode   models.Mode
	course int
	pair   models.RecordPair
	// showName appends "by <player>" to each slot
	showName bool
}

// courseLabel prefixes bonus labels with B and appends the bonus number
func courseLabel(label string, course int) string {
	if course == 0 {
		return label
	}
	return fmt.Sprintf("B%s %d", label, course)
}

func buildRecordEmbed(p recordEmbedParams) *discordgo.MessageEmbed {
	title := fmt.Sprintf("[%s] %s", courseLabel(p.label, p.course), p.entry.Name)
	if p.player != "" {
		title = fmt.Sprintf("[%s %s] %s", courseLabel(p.label, p.course), p.player, p.entry.Name)
	}
	if p.entry.Difficulty > 0 {
		title = fmt.Sprintf("%s (T%d)", title, p.entry.Difficulty)
	}

	embed := &discordgo.MessageEmbed{
		Title: title,
		URL:   fmt.Sprintf("%s?%s=", kzapi.MapURL(p.entry.Name), strings.ToLower(p.mode.Short())),
		Color: common.ColorPrimary,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: kzapi.MapThumbnailURL(p.entry.Name),
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "TP",
				Value:  formatSlot(p.pair.TP, p.pair.TPPlace, p.showName),
				Inline: true,
			},
			{
				Name:   "PRO",
				Value:  formatSlot(p.pair.Pro, p.pair.ProPlace, p.showName),
				Inline: true,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Mode: %s", p.mode.Long()),
		},
	}

	if replays := replayLinks(p.pair); replays != "" {
		embed.Description = replays
	}

	return embed
}

// formatSlot renders one run. place is left out when it is unknown.
func formatSlot(record *models.Record, place int, showName bool) string {
	if record == nil {
		return common.NoRecord
	}

	value := common.FormatTime(record.Time)
	if place > 0 {
		value = fmt.Sprintf("%s (#%d)", value, place)
	}
	if record.IsTeleportRun() {
		value = fmt.Sprintf("%s (%s)", value, common.FormatTeleports(record.Teleports))
	}
	if showName {
		value = fmt.Sprintf("%s\nby %s", value, record.PlayerName)
	}
	if createdAt, err := record.CreatedAt(); err == nil {
		value = fmt.Sprintf("%s\n%s", value, common.FormatDiscordTimestamp(createdAt, "d"))
	}
	return value
}

func replayLinks(pair models.RecordPair) string {
	var links []string
	if pair.TP != nil && pair.TP.HasReplay() {
		links = append(links, fmt.Sprintf("[TP Replay](%s)", kzapi.ReplayURL(pair.TP.ReplayID)))
	}
	if pair.Pro != nil && pair.Pro.HasReplay() {
		links = append(links, fmt.Sprintf("[PRO Replay](%s)", kzapi.ReplayURL(pair.Pro.ReplayID)))
	}
	return strings.Join(links, " | ")
}

func buildLeaderboardEmbed(entry *models.MapEntry, mode models.Mode, course int, teleports bool, records []models.Record) *discordgo.MessageEmbed {
	runType := "PRO"
	if teleports {
		runType = "TP"
	}

	var sb strings.Builder
	for i, record := range records {
		line := fmt.Sprintf("**%d.** %s - %s", i+1, record.PlayerName, common.FormatTime(record.Time))
		if record.IsTeleportRun() {
			line = fmt.Sprintf("%s (%s)", line, common.FormatTeleports(record.Teleports))
		}
		sb.WriteString(line + "\n")
	}
	if len(records) == 0 {
		sb.WriteString(common.NoRecord)
	}

	title := fmt.Sprintf("[Top %d %s] %s", common.LeaderboardSize, runType, entry.Name)
	if course > 0 {
		title = fmt.Sprintf("%s - Bonus %d", title, course)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		URL:         kzapi.MapURL(entry.Name),
		Description: sb.String(),
		Color:       common.ColorPrimary,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: kzapi.MapThumbnailURL(entry.Name),
		},
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Mode: %s", mode.Long()),
		},
	}
}
