package models

// TargetKind says how a command's target player was determined
type TargetKind int

const (
	TargetStoredPreference TargetKind = iota
	TargetMentionedUser
	TargetExplicitID
	TargetExplicitName
)

func (k TargetKind) String() string {
	switch k {
	case TargetStoredPreference:
		return "stored_preference"
	case TargetMentionedUser:
		return "mentioned_user"
	case TargetExplicitID:
		return "explicit_id"
	case TargetExplicitName:
		return "explicit_name"
	default:
		return "unknown"
	}
}

// TargetResolution is the player a single command runs against
type TargetResolution struct {
	Kind    TargetKind
	SteamID string
	// Name is set when the player was found by name lookup
	Name string
}
