package common

// Discord color constants
const (
	ColorPrimary = 0x7480C2 // schnose lavender
	ColorSuccess = 0x57F287 // Green
	ColorError   = 0xED4245 // Red
	ColorWarning = 0xFEE75C // Yellow
	ColorInfo    = 0x3498DB // Blue
)

// Embed constants
const (
	NoRecord        = "😔"
	UnknownPlayer   = "unknown"
	LeaderboardSize = 10
)
