package common

import (
	"errors"
	"fmt"

	"schnose/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string      // Message shown to Discord user
	LogMessage  string      // Internal message for logging
	Ephemeral   bool        // Whether the error message should be ephemeral
	Err         error       // Underlying error
	Context     interface{} // Additional context for logging
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// IsUserError reports whether the user can fix the problem themselves
func (e *BotError) IsUserError() bool {
	return e.Err == nil
}

// NewUserError creates an error for user-caused issues (bad input, missing links)
func NewUserError(userMessage string, logMessage string) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  logMessage,
		Ephemeral:   true,
	}
}

// NewSystemError creates an error for system issues (database, remote APIs)
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: "Something went wrong. Please try again later.",
		LogMessage:  logMessage,
		Ephemeral:   true,
		Err:         err,
	}
}

// FromServiceError converts a resolver failure into a BotError. The service
// message is shown verbatim, except that database failures never leak detail.
func FromServiceError(err error) *BotError {
	var botErr *BotError
	if errors.As(err, &botErr) {
		return botErr
	}

	svcErr, ok := service.AsError(err)
	if !ok {
		return NewSystemError(err, "unexpected error")
	}

	switch {
	case errors.Is(svcErr, service.ErrDatabase), errors.Is(svcErr, service.ErrRemoteAPI):
		return &BotError{
			UserMessage: svcErr.Message,
			LogMessage:  svcErr.Kind.Error(),
			Ephemeral:   true,
			Err:         svcErr,
		}
	default:
		return &BotError{
			UserMessage: svcErr.Message,
			LogMessage:  svcErr.Kind.Error(),
			Ephemeral:   true,
		}
	}
}

// RespondWithError sends an error message as an interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "❌ " + message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// FollowUpWithError sends an error message as a follow-up to a deferred interaction
func FollowUpWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Content: "❌ " + message,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Errorf("Error sending follow-up error message: %v", err)
	}
}

// HandleError logs err and tells the user what went wrong. It returns the
// BotError it reported.
func HandleError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, deferred bool) *BotError {
	botErr := FromServiceError(err)

	fields := log.Fields{
		"user_id":      InvokerID(i),
		"command":      i.ApplicationCommandData().Name,
		"user_message": botErr.UserMessage,
		"context":      botErr.Context,
	}
	if botErr.IsUserError() {
		log.WithFields(fields).Info(botErr.Error())
	} else {
		log.WithFields(fields).WithError(botErr.Err).Error(botErr.LogMessage)
	}

	if deferred {
		FollowUpWithError(s, i, botErr.UserMessage)
	} else {
		RespondWithError(s, i, botErr.UserMessage)
	}
	return botErr
}
