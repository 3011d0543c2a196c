package models

import (
	"time"
)

// User represents a Discord user's stored preferences
type User struct {
	DiscordID int64     `db:"discord_id"`
	Name      string    `db:"name"`
	SteamID   *string   `db:"steam_id"`
	Mode      *Mode     `db:"mode"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// HasSteamID reports whether the user linked a Steam account
func (u *User) HasSteamID() bool {
	return u != nil && u.SteamID != nil && *u.SteamID != ""
}

// HasMode reports whether the user stored a preferred mode
func (u *User) HasMode() bool {
	return u != nil && u.Mode != nil
}

// UserUpdate describes the fields written by an upsert. Nil pointers leave the
// stored column untouched unless the matching Clear flag is set.
type UserUpdate struct {
	DiscordID int64
	Name      string
	SteamID   *string
	Mode      *Mode
	ClearMode bool
}
