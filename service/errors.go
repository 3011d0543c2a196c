package service

import (
	"errors"
	"fmt"

	"schnose/models"
)

// Error kinds. Match them with errors.Is.
var (
	ErrMissingMode     = errors.New("missing mode")
	ErrMissingTarget   = errors.New("missing target")
	ErrUnlinkedMention = errors.New("unlinked mention")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrMapNotFound     = errors.New("map not found")
	ErrInvalidCourse   = errors.New("invalid course")
	ErrNoRecords       = errors.New("no records")
	ErrRemoteAPI       = errors.New("remote api error")
	ErrDatabase        = errors.New("database error")
)

// Error is a failed resolution step. Message is safe to show to the user.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts a *Error from err's chain
func AsError(err error) (*Error, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

func missingModeError() error {
	return &Error{
		Kind:    ErrMissingMode,
		Message: "You didn't specify a mode and also didn't set your preference with `/mode`. Please pick a mode or save your preferred one.",
	}
}

func missingTargetError() error {
	return &Error{
		Kind:    ErrMissingTarget,
		Message: "You did not specify a target and you also haven't saved a SteamID in the database. You can do that with `/setsteam`.",
	}
}

func unlinkedMentionError(discordID int64) error {
	return &Error{
		Kind:    ErrUnlinkedMention,
		Message: fmt.Sprintf("<@%d> did not register a SteamID in the database. Please use their SteamID or tell them to use `/setsteam`.", discordID),
	}
}

func playerNotFoundError(name string, err error) error {
	return &Error{
		Kind:    ErrPlayerNotFound,
		Message: fmt.Sprintf("Couldn't find a player named `%s`.", name),
		Err:     err,
	}
}

func notUserMentionError(token string) error {
	return &Error{
		Kind:    ErrPlayerNotFound,
		Message: fmt.Sprintf("`%s` is not a user mention. Please mention a user, or use a SteamID or player name.", token),
	}
}

func mapNotFoundError(fragment string) error {
	return &Error{
		Kind:    ErrMapNotFound,
		Message: fmt.Sprintf("`%s` is not a valid map name.", fragment),
	}
}

func noMapsForTierError(tier *int) error {
	message := "The map catalog is empty."
	if tier != nil {
		message = fmt.Sprintf("There are no global maps in tier %d.", *tier)
	}
	return &Error{
		Kind:    ErrMapNotFound,
		Message: message,
	}
}

func invalidCourseError(mapName string, course, bonuses int) error {
	return &Error{
		Kind:    ErrInvalidCourse,
		Message: fmt.Sprintf("`%s` has %d bonus course(s); %d is not one of them.", mapName, bonuses, course),
	}
}

func noRecordsError(player string, mode models.Mode) error {
	return &Error{
		Kind:    ErrNoRecords,
		Message: fmt.Sprintf("`%s` has no %s records.", player, mode.Long()),
	}
}

func remoteAPIError(api string, err error) error {
	return &Error{
		Kind:    ErrRemoteAPI,
		Message: fmt.Sprintf("%s request failed. Please try again later.", api),
		Err:     err,
	}
}

func databaseError(err error) error {
	return &Error{
		Kind:    ErrDatabase,
		Message: "Database Error.",
		Err:     err,
	}
}
