package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"schnose/bot/common"
	"schnose/models"
	"schnose/service"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const invokerID int64 = 100

func modeOption(value string) common.Options {
	return common.ParseOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "mode", Type: discordgo.ApplicationCommandOptionString, Value: value},
	})
}

func newTestFeature() (*Feature, *service.MockUserRepository, *service.MockGlobalAPI, *service.MockEventPublisher) {
	mockUserRepo := new(service.MockUserRepository)
	mockAPI := new(service.MockGlobalAPI)
	mockPublisher := new(service.MockEventPublisher)
	mockPublisher.On("Publish", mock.Anything).Return(nil)

	feature := NewFeature(service.NewPreferenceService(mockUserRepo, mockAPI, mockPublisher))
	return feature, mockUserRepo, mockAPI, mockPublisher
}

func TestMode_ShowsStoredPreference(t *testing.T) {
	ctx := context.Background()
	feature, mockUserRepo, _, _ := newTestFeature()

	mode := models.ModeSimpleKZ
	mockUserRepo.On("GetByDiscordID", ctx, invokerID).Return(&models.User{DiscordID: invokerID, Mode: &mode}, nil).Once()

	content, err := feature.mode(ctx, invokerID, "alpha", common.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Your current mode preference is set to: SimpleKZ", content)

	mockUserRepo.On("GetByDiscordID", ctx, invokerID).Return(nil, nil).Once()

	content, err = feature.mode(ctx, invokerID, "alpha", common.Options{})
	require.NoError(t, err)
	assert.Equal(t, "You don't have a mode preference set.", content)
}

func TestMode_StoresChoice(t *testing.T) {
	ctx := context.Background()
	feature, mockUserRepo, _, mockPublisher := newTestFeature()

	mockUserRepo.On("Upsert", ctx, mock.MatchedBy(func(u *models.UserUpdate) bool {
		return u.DiscordID == invokerID && u.Mode != nil && *u.Mode == models.ModeVanilla && !u.ClearMode
	})).Return(&models.User{DiscordID: invokerID}, nil)

	content, err := feature.mode(ctx, invokerID, "alpha", modeOption("kz_vanilla"))

	require.NoError(t, err)
	assert.Equal(t, "Set your mode preference to: Vanilla", content)
	mockUserRepo.AssertExpectations(t)
	mockPublisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestMode_NoneClearsPreference(t *testing.T) {
	ctx := context.Background()
	feature, mockUserRepo, _, _ := newTestFeature()

	mockUserRepo.On("Upsert", ctx, mock.MatchedBy(func(u *models.UserUpdate) bool {
		return u.Mode == nil && u.ClearMode
	})).Return(&models.User{DiscordID: invokerID}, nil)

	content, err := feature.mode(ctx, invokerID, "alpha", modeOption(ModeNone))

	require.NoError(t, err)
	assert.Equal(t, "Cleared your mode preference.", content)
	mockUserRepo.AssertExpectations(t)
}

func TestMode_DatabaseFailure(t *testing.T) {
	ctx := context.Background()
	feature, mockUserRepo, _, mockPublisher := newTestFeature()

	mockUserRepo.On("Upsert", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := feature.mode(ctx, invokerID, "alpha", modeOption("kz_timer"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrDatabase))
	assert.Equal(t, "Database Error.", common.FromServiceError(err).UserMessage)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestSetSteam(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects malformed ids before any lookup", func(t *testing.T) {
		feature, mockUserRepo, mockAPI, _ := newTestFeature()
		opts := common.ParseOptions([]*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "steam_id", Type: discordgo.ApplicationCommandOptionString, Value: "STEAM_2:0:1"},
		})

		_, err := feature.setSteam(ctx, invokerID, "alpha", opts)

		assert.True(t, errors.Is(err, service.ErrPlayerNotFound))
		mockAPI.AssertNotCalled(t, "PlayerBySteamID", mock.Anything, mock.Anything)
		mockUserRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("links a known player", func(t *testing.T) {
		feature, mockUserRepo, mockAPI, _ := newTestFeature()
		steamID := "STEAM_1:1:161178172"
		opts := common.ParseOptions([]*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "steam_id", Type: discordgo.ApplicationCommandOptionString, Value: " " + steamID + " "},
		})

		mockAPI.On("PlayerBySteamID", ctx, steamID).Return(&models.Player{SteamID: steamID, Name: "AlphaKZ"}, nil)
		mockUserRepo.On("Upsert", ctx, mock.MatchedBy(func(u *models.UserUpdate) bool {
			return u.SteamID != nil && *u.SteamID == steamID && u.Mode == nil && !u.ClearMode
		})).Return(&models.User{DiscordID: invokerID, SteamID: &steamID}, nil)

		content, err := feature.setSteam(ctx, invokerID, "alpha", opts)

		require.NoError(t, err)
		assert.Equal(t, "Successfully set SteamID `STEAM_1:1:161178172` for <@100>.", content)
		mockUserRepo.AssertExpectations(t)
	})
}

// discordRecorder answers every Discord REST call with 204 and keeps the
// request paths and bodies in order
type discordRecorder struct {
	mu     sync.Mutex
	paths  []string
	bodies []map[string]any
}

func (r *discordRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	body := map[string]any{}
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(raw, &body)
	}

	r.mu.Lock()
	r.paths = append(r.paths, req.URL.Path)
	r.bodies = append(r.bodies, body)
	r.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusNoContent,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    req,
	}, nil
}

func newRecordingSession(t *testing.T) (*discordgo.Session, *discordRecorder) {
	t.Helper()
	session, err := discordgo.New("Bot test")
	require.NoError(t, err)
	recorder := &discordRecorder{}
	session.Client = &http.Client{Transport: recorder}
	return session, recorder
}

func setSteamInteraction(steamID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     "1",
		AppID:  "2",
		Token:  "token",
		Type:   discordgo.InteractionApplicationCommand,
		Member: &discordgo.Member{User: &discordgo.User{ID: "100", Username: "alpha"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "setsteam",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "steam_id", Type: discordgo.ApplicationCommandOptionString, Value: steamID},
			},
		},
	}}
}

func TestHandleCommand_SetSteamDefersBeforeLookup(t *testing.T) {
	ctx := context.Background()
	steamID := "STEAM_1:1:161178172"

	t.Run("success follows up", func(t *testing.T) {
		feature, mockUserRepo, mockAPI, _ := newTestFeature()
		session, recorder := newRecordingSession(t)

		mockAPI.On("PlayerBySteamID", ctx, steamID).Return(&models.Player{SteamID: steamID}, nil)
		mockUserRepo.On("Upsert", ctx, mock.Anything).Return(&models.User{DiscordID: invokerID, SteamID: &steamID}, nil)

		err := feature.HandleCommand(ctx, session, setSteamInteraction(steamID))
		require.NoError(t, err)

		require.Len(t, recorder.paths, 2)
		assert.True(t, strings.HasSuffix(recorder.paths[0], "/interactions/1/token/callback"))
		assert.EqualValues(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, recorder.bodies[0]["type"])
		assert.True(t, strings.HasSuffix(recorder.paths[1], "/webhooks/2/token"))
		assert.Contains(t, recorder.bodies[1]["content"], "Successfully set SteamID")
	})

	t.Run("failure follows up with the error", func(t *testing.T) {
		feature, mockUserRepo, mockAPI, _ := newTestFeature()
		session, recorder := newRecordingSession(t)

		mockAPI.On("PlayerBySteamID", ctx, steamID).Return(nil, errors.New("timeout"))

		err := feature.HandleCommand(ctx, session, setSteamInteraction(steamID))
		assert.ErrorIs(t, err, service.ErrRemoteAPI)

		require.Len(t, recorder.paths, 2)
		assert.True(t, strings.HasSuffix(recorder.paths[0], "/callback"))
		assert.True(t, strings.HasSuffix(recorder.paths[1], "/webhooks/2/token"))
		assert.Contains(t, recorder.bodies[1]["content"], "GlobalAPI request failed")
		mockUserRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestBuildDatabaseEmbed(t *testing.T) {
	empty := buildDatabaseEmbed(invokerID, nil)
	assert.Contains(t, empty.Description, "no database entry")
	assert.Empty(t, empty.Fields)

	steamID := "STEAM_0:0:1"
	mode := models.ModeKZTimer
	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	user := &models.User{DiscordID: invokerID, Name: "alpha", SteamID: &steamID, Mode: &mode, UpdatedAt: updated}

	embed := buildDatabaseEmbed(invokerID, user)

	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "<@100>", embed.Fields[0].Value)
	assert.Equal(t, "alpha", embed.Fields[1].Value)
	assert.Equal(t, "`STEAM_0:0:1`", embed.Fields[2].Value)
	assert.Equal(t, "KZTimer", embed.Fields[3].Value)
	assert.Equal(t, updated.Format(time.RFC3339), embed.Timestamp)
}
