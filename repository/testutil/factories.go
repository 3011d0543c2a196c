package testutil

import (
	"schnose/models"
)

// NewSteamLink builds an update that links steamID for the user
func NewSteamLink(discordID int64, name, steamID string) *models.UserUpdate {
	return &models.UserUpdate{
		DiscordID: discordID,
		Name:      name,
		SteamID:   &steamID,
	}
}

// NewModeChange builds an update that stores mode for the user
func NewModeChange(discordID int64, name string, mode models.Mode) *models.UserUpdate {
	return &models.UserUpdate{
		DiscordID: discordID,
		Name:      name,
		Mode:      &mode,
	}
}
