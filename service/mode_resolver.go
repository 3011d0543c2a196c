package service

import (
	"context"

	"schnose/models"
)

type modeResolver struct {
	users UserRepository
}

// NewModeResolver creates a mode resolver backed by the preference store
func NewModeResolver(users UserRepository) ModeResolver {
	return &modeResolver{users: users}
}

// Resolve never falls back to a default mode
func (r *modeResolver) Resolve(ctx context.Context, explicit *models.Mode, invokerID int64) (models.Mode, error) {
	if explicit != nil {
		return *explicit, nil
	}

	user, err := r.users.GetByDiscordID(ctx, invokerID)
	if err != nil {
		return "", databaseError(err)
	}
	if !user.HasMode() {
		return "", missingModeError()
	}

	return *user.Mode, nil
}
