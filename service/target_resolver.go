package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"schnose/models"

	log "github.com/sirupsen/logrus"
)

// <@123> or <@!123>
var mentionPattern = regexp.MustCompile(`^<@!?([0-9]+)>$`)

type targetResolver struct {
	users UserRepository
	api   GlobalAPI
}

// NewTargetResolver creates a target resolver
func NewTargetResolver(users UserRepository, api GlobalAPI) TargetResolver {
	return &targetResolver{users: users, api: api}
}

// Resolve checks, in order: no token, a user mention, a SteamID, a player
// name. Commands rely on this precedence.
func (r *targetResolver) Resolve(ctx context.Context, token *string, invokerID int64) (*models.TargetResolution, error) {
	if token == nil || strings.TrimSpace(*token) == "" {
		steamID, err := r.linkedSteamID(ctx, invokerID)
		if err != nil {
			return nil, err
		}
		if steamID == "" {
			return nil, missingTargetError()
		}
		return &models.TargetResolution{Kind: models.TargetStoredPreference, SteamID: steamID}, nil
	}

	input := strings.TrimSpace(*token)

	if match := mentionPattern.FindStringSubmatch(input); match != nil {
		mentionedID, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			return nil, playerNotFoundError(input, err)
		}

		steamID, err := r.linkedSteamID(ctx, mentionedID)
		if err != nil {
			return nil, err
		}
		if steamID == "" {
			return nil, unlinkedMentionError(mentionedID)
		}
		return &models.TargetResolution{Kind: models.TargetMentionedUser, SteamID: steamID}, nil
	}

	// role mentions and malformed mentions never name a player
	if strings.HasPrefix(input, "<@") && strings.HasSuffix(input, ">") {
		return nil, notUserMentionError(input)
	}

	if IsSteamID(input) {
		return &models.TargetResolution{Kind: models.TargetExplicitID, SteamID: input}, nil
	}

	player, err := r.api.PlayerByName(ctx, input)
	if err != nil {
		log.WithFields(log.Fields{
			"name": input,
		}).WithError(err).Warn("Player lookup by name failed")
		return nil, playerNotFoundError(input, err)
	}
	if player == nil {
		return nil, playerNotFoundError(input, nil)
	}

	return &models.TargetResolution{
		Kind:    models.TargetExplicitName,
		SteamID: player.SteamID,
		Name:    player.Name,
	}, nil
}

func (r *targetResolver) linkedSteamID(ctx context.Context, discordID int64) (string, error) {
	user, err := r.users.GetByDiscordID(ctx, discordID)
	if err != nil {
		return "", databaseError(err)
	}
	if !user.HasSteamID() {
		return "", nil
	}
	return *user.SteamID, nil
}
