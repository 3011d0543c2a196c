package preferences

import (
	"context"
	"fmt"
	"strings"

	"schnose/bot/common"

	log "github.com/sirupsen/logrus"
)

// mode shows the stored mode when no option is given, otherwise stores or
// clears it
func (f *Feature) mode(ctx context.Context, invokerID int64, name string, opts common.Options) (string, error) {
	choice := opts.String("mode")
	if choice == nil {
		user, err := f.preferences.Get(ctx, invokerID)
		if err != nil {
			return "", err
		}
		if !user.HasMode() {
			return "You don't have a mode preference set.", nil
		}
		return fmt.Sprintf("Your current mode preference is set to: %s", user.Mode.Long()), nil
	}

	if strings.EqualFold(*choice, ModeNone) {
		if _, err := f.preferences.SetMode(ctx, invokerID, name, nil); err != nil {
			return "", err
		}
		log.WithField("user_id", invokerID).Info("Cleared mode preference")
		return "Cleared your mode preference.", nil
	}

	mode := opts.Mode("mode")
	if mode == nil {
		return "", common.NewUserError(fmt.Sprintf("`%s` is not a mode.", *choice), "unknown mode choice")
	}

	if _, err := f.preferences.SetMode(ctx, invokerID, name, mode); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"user_id": invokerID,
		"mode":    *mode,
	}).Info("Updated mode preference")

	return fmt.Sprintf("Set your mode preference to: %s", mode.Long()), nil
}

func (f *Feature) setSteam(ctx context.Context, invokerID int64, name string, opts common.Options) (string, error) {
	steamID := strings.TrimSpace(opts.StringOr("steam_id", ""))

	if _, err := f.preferences.LinkSteamID(ctx, invokerID, name, steamID); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"user_id":  invokerID,
		"steam_id": steamID,
	}).Info("Linked SteamID")

	return fmt.Sprintf("Successfully set SteamID `%s` for %s.", steamID, common.GetUserMention(invokerID)), nil
}
