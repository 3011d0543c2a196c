package players

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

const (
	barWidth        = 10
	holdersPerEmbed = 50
)

// completionBar draws done out of total as a bar of barWidth cells
func completionBar(done, total int) string {
	filled := 0
	if total > 0 {
		filled = done * barWidth / total
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func percentage(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

func buildProfileEmbed(p *service.PlayerProfile) *discordgo.MessageEmbed {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏆 **World Records: %d (TP) | %d (PRO)**\n", p.TP.WorldRecords, p.Pro.WorldRecords)
	fmt.Fprintf(&sb, "TP: `%d/%d (%.2f%%)` | PRO: `%d/%d (%.2f%%)`\n",
		p.TP.Completions, p.TotalMaps, percentage(p.TP.Completions, p.TotalMaps),
		p.Pro.Completions, p.TotalMaps, percentage(p.Pro.Completions, p.TotalMaps))

	for tier := 0; tier < service.Tiers; tier++ {
		fmt.Fprintf(&sb, "T%d ⌠ %s ⌡ ⌠ %s ⌡\n", tier+1,
			completionBar(p.TP.ByTier[tier], p.MapsByTier[tier]),
			completionBar(p.Pro.ByTier[tier], p.MapsByTier[tier]))
	}

	fmt.Fprintf(&sb, "\nPoints: **%s** (%s TP | %s PRO)",
		common.FormatPoints(p.TotalPoints()),
		common.FormatPoints(p.TP.Points),
		common.FormatPoints(p.Pro.Points))

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s - %s Profile", p.Player.Name, p.Mode.Long()),
		URL:         kzapi.PlayerURL(p.Player.SteamID, p.Mode),
		Description: sb.String(),
		Color:       common.ColorPrimary,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("SteamID: %s", p.Player.SteamID),
		},
	}
}

// buildHolderEmbeds splits the leaderboard into pages of holdersPerEmbed rows
func buildHolderEmbeds(mode models.Mode, teleports, bonuses bool, holders []models.WorldRecordHolder) []*discordgo.MessageEmbed {
	runType := "PRO"
	if teleports {
		runType = "TP"
	}
	title := fmt.Sprintf("[Top %d %s] World Records", kzapi.MaxWorldRecordHolders, runType)
	if bonuses {
		title = fmt.Sprintf("[Top %d %s] Bonus World Records", kzapi.MaxWorldRecordHolders, runType)
	}

	if len(holders) == 0 {
		return []*discordgo.MessageEmbed{{
			Title:       title,
			URL:         kzapi.LeaderboardURL(mode),
			Description: common.NoRecord,
			Color:       common.ColorPrimary,
			Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Mode: %s", mode.Long())},
		}}
	}

	pages := (len(holders) + holdersPerEmbed - 1) / holdersPerEmbed
	embeds := make([]*discordgo.MessageEmbed, 0, pages)
	for page := 0; page < pages; page++ {
		start := page * holdersPerEmbed
		end := min(start+holdersPerEmbed, len(holders))

		var sb strings.Builder
		for i, holder := range holders[start:end] {
			fmt.Fprintf(&sb, "**#%d** %s - %d\n", start+i+1, holder.PlayerName, holder.Count)
		}

		embeds = append(embeds, &discordgo.MessageEmbed{
			Title:       title,
			URL:         kzapi.LeaderboardURL(mode),
			Description: sb.String(),
			Color:       common.ColorPrimary,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Mode: %s | Page %d / %d", mode.Long(), page+1, pages),
			},
		})
	}
	return embeds
}
