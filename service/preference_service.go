package service

import (
	"context"
	"regexp"

	"schnose/events"
	"schnose/models"

	log "github.com/sirupsen/logrus"
)

var steamIDPattern = regexp.MustCompile(`^STEAM_[0-1]:[0-1]:[0-9]+$`)

// IsSteamID reports whether s is a SteamID in STEAM_X:Y:Z form
func IsSteamID(s string) bool {
	return steamIDPattern.MatchString(s)
}

type preferenceService struct {
	users     UserRepository
	api       GlobalAPI
	publisher events.Publisher
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(users UserRepository, api GlobalAPI, publisher events.Publisher) PreferenceService {
	return &preferenceService{
		users:     users,
		api:       api,
		publisher: publisher,
	}
}

func (s *preferenceService) Get(ctx context.Context, discordID int64) (*models.User, error) {
	user, err := s.users.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, databaseError(err)
	}
	return user, nil
}

func (s *preferenceService) SetMode(ctx context.Context, discordID int64, name string, mode *models.Mode) (*models.User, error) {
	update := &models.UserUpdate{
		DiscordID: discordID,
		Name:      name,
		Mode:      mode,
		ClearMode: mode == nil,
	}

	user, err := s.users.Upsert(ctx, update)
	if err != nil {
		return nil, databaseError(err)
	}

	modeName := ""
	if mode != nil {
		modeName = string(*mode)
	}
	s.publish(events.PreferenceUpdatedEvent{
		DiscordID: discordID,
		Name:      name,
		Mode:      modeName,
		Field:     "mode",
	})

	return user, nil
}

func (s *preferenceService) LinkSteamID(ctx context.Context, discordID int64, name, steamID string) (*models.User, error) {
	if !IsSteamID(steamID) {
		return nil, &Error{
			Kind:    ErrPlayerNotFound,
			Message: "`" + steamID + "` is not a valid SteamID. It should look like `STEAM_1:1:161178172`.",
		}
	}

	player, err := s.api.PlayerBySteamID(ctx, steamID)
	if err != nil {
		return nil, remoteAPIError("GlobalAPI", err)
	}
	if player == nil {
		return nil, &Error{
			Kind:    ErrPlayerNotFound,
			Message: "The GlobalAPI doesn't know `" + steamID + "`. Set a global time first.",
		}
	}

	user, err := s.users.Upsert(ctx, &models.UserUpdate{
		DiscordID: discordID,
		Name:      name,
		SteamID:   &steamID,
	})
	if err != nil {
		return nil, databaseError(err)
	}

	s.publish(events.PreferenceUpdatedEvent{
		DiscordID: discordID,
		Name:      name,
		SteamID:   steamID,
		Field:     "steam_id",
	})

	return user, nil
}

// publish never fails the caller; the row is already written
func (s *preferenceService) publish(event events.PreferenceUpdatedEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(event); err != nil {
		log.WithFields(log.Fields{
			"discord_id": event.DiscordID,
			"field":      event.Field,
		}).WithError(err).Warn("Failed to publish preference update")
	}
}
