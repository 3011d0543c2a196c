package common

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// Invoker returns the user who triggered the interaction, in guilds and DMs
func Invoker(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// InvokerID returns the invoking user's id, or 0 if it is missing
func InvokerID(i *discordgo.InteractionCreate) int64 {
	user := Invoker(i)
	if user == nil {
		return 0
	}
	id, err := ParseUserID(user.ID)
	if err != nil {
		return 0
	}
	return id
}

// InvokerName returns the invoking user's username
func InvokerName(i *discordgo.InteractionCreate) string {
	if user := Invoker(i); user != nil {
		return user.Username
	}
	return ""
}

// ParseUserID converts a Discord user ID string to int64
func ParseUserID(userID string) (int64, error) {
	return strconv.ParseInt(userID, 10, 64)
}

// FormatUserID converts an int64 user ID to string
func FormatUserID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// GetUserMention returns a Discord mention string for a user
func GetUserMention(userID int64) string {
	return "<@" + FormatUserID(userID) + ">"
}
