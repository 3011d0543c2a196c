package players

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"schnose/bot/common"
	"schnose/kzapi"
	"schnose/models"
	"schnose/service"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const invokerID int64 = 100

func newTestFeature(users *service.MockUserRepository, api *service.MockGlobalAPI) *Feature {
	return NewFeature(
		service.NewModeResolver(users),
		service.NewTargetResolver(users, api),
		service.NewPlayerService(api),
	)
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func profileQuery(steamID string, mode models.Mode, teleports bool) kzapi.TopRecordsQuery {
	return kzapi.TopRecordsQuery{
		Mode:         mode,
		HasTeleports: teleports,
		SteamID:      steamID,
		Limit:        9999,
	}
}

func TestProfile_UsesStoredLink(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(service.MockUserRepository)
	mockAPI := new(service.MockGlobalAPI)
	feature := newTestFeature(mockUserRepo, mockAPI)

	steamID := "STEAM_1:1:161178172"
	mode := models.ModeSimpleKZ
	mockUserRepo.On("GetByDiscordID", mock.Anything, invokerID).
		Return(&models.User{DiscordID: invokerID, SteamID: &steamID, Mode: &mode}, nil)
	mockAPI.On("PlayerBySteamID", mock.Anything, steamID).Return(&models.Player{SteamID: steamID, Name: "AlphaKeks"}, nil)
	mockAPI.On("Maps", mock.Anything).Return([]models.MapEntry{
		{ID: 1, Name: "kz_beginnerblock", Difficulty: 1},
		{ID: 2, Name: "kz_lionharder", Difficulty: 7},
	}, nil)
	mockAPI.On("TopRecords", mock.Anything, profileQuery(steamID, mode, true)).
		Return([]models.Record{{ID: 1, MapName: "kz_beginnerblock", Points: 1000}}, nil)
	mockAPI.On("TopRecords", mock.Anything, profileQuery(steamID, mode, false)).
		Return([]models.Record{{ID: 2, MapName: "kz_lionharder", Points: 1200}}, nil)

	embed, err := feature.profile(ctx, invokerID, common.Options{})

	require.NoError(t, err)
	assert.Equal(t, "AlphaKeks - SimpleKZ Profile", embed.Title)
	assert.Equal(t, "https://kzgo.eu/players/STEAM_1:1:161178172?skz=", embed.URL)
	assert.Contains(t, embed.Description, "World Records: 1 (TP) | 0 (PRO)")
	assert.Contains(t, embed.Description, "TP: `1/2 (50.00%)` | PRO: `1/2 (50.00%)`")
	assert.Contains(t, embed.Description, "T1 ⌠ ██████████ ⌡ ⌠ ░░░░░░░░░░ ⌡")
	assert.Contains(t, embed.Description, "T7 ⌠ ░░░░░░░░░░ ⌡ ⌠ ██████████ ⌡")
	assert.Contains(t, embed.Description, "Points: **2,200** (1,000 TP | 1,200 PRO)")
	assert.Equal(t, "SteamID: STEAM_1:1:161178172", embed.Footer.Text)
}

func TestProfile_MissingModeSkipsLookups(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(service.MockUserRepository)
	mockAPI := new(service.MockGlobalAPI)
	feature := newTestFeature(mockUserRepo, mockAPI)

	mockUserRepo.On("GetByDiscordID", mock.Anything, invokerID).Return(nil, nil)

	opts := common.ParseOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("player", "AlphaKeks"),
	})

	_, err := feature.profile(ctx, invokerID, opts)

	assert.True(t, errors.Is(err, service.ErrMissingMode))
	mockAPI.AssertNotCalled(t, "PlayerByName", mock.Anything, mock.Anything)
	mockAPI.AssertNotCalled(t, "PlayerBySteamID", mock.Anything, mock.Anything)
}

func TestWorldRecordHolders(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(service.MockUserRepository)
	mockAPI := new(service.MockGlobalAPI)
	feature := newTestFeature(mockUserRepo, mockAPI)

	holders := make([]models.WorldRecordHolder, 0, 60)
	for i := 0; i < 60; i++ {
		holders = append(holders, models.WorldRecordHolder{
			SteamID:    fmt.Sprintf("STEAM_1:0:%d", i+1),
			PlayerName: fmt.Sprintf("player%d", i+1),
			Count:      100 - i,
		})
	}
	mockAPI.On("WorldRecordHolders", mock.Anything, models.ModeKZTimer, true, true).Return(holders, nil)

	opts := common.ParseOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("mode", "kz_timer"),
		{Name: "runtype", Type: discordgo.ApplicationCommandOptionBoolean, Value: true},
	})

	embeds, err := feature.worldRecordHolders(ctx, invokerID, opts, true)

	require.NoError(t, err)
	require.Len(t, embeds, 2)
	assert.Equal(t, "[Top 100 TP] Bonus World Records", embeds[0].Title)
	assert.Equal(t, "https://kzgo.eu/leaderboards?kzt=", embeds[0].URL)
	assert.Contains(t, embeds[0].Description, "**#1** player1 - 100\n")
	assert.Contains(t, embeds[1].Description, "**#51** player51 - 50\n")
	assert.Equal(t, "Mode: KZTimer | Page 2 / 2", embeds[1].Footer.Text)
}

func TestBuildHolderEmbeds_Empty(t *testing.T) {
	embeds := buildHolderEmbeds(models.ModeVanilla, false, false, nil)

	require.Len(t, embeds, 1)
	assert.Equal(t, "[Top 100 PRO] World Records", embeds[0].Title)
	assert.Equal(t, common.NoRecord, embeds[0].Description)
}

func TestCompletionBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", completionBar(0, 0))
	assert.Equal(t, "███░░░░░░░", completionBar(39, 100))
	assert.Equal(t, "██████████", completionBar(12, 12))
}
