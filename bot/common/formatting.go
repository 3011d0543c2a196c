package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatTime renders a run time as mm:ss.mmm, with an hh: prefix once the
// run passes an hour
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	totalMillis := int64(math.Round(seconds * 1000))
	millis := totalMillis % 1000
	totalSeconds := totalMillis / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60

	formatted := fmt.Sprintf("%02d:%02d.%03d", minutes, secs, millis)
	if hours > 0 {
		formatted = fmt.Sprintf("%02d:%s", hours, formatted)
	}
	return formatted
}

// FormatPoints formats a point total with thousand separators
func FormatPoints(points int) string {
	if points < 0 {
		return "-" + FormatPoints(-points)
	}

	str := strconv.Itoa(points)
	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}
	return result.String()
}

// FormatTeleports renders a teleport count, e.g. "1 TP" or "12 TPs"
func FormatTeleports(teleports int) string {
	if teleports == 1 {
		return "1 TP"
	}
	return fmt.Sprintf("%d TPs", teleports)
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// CheckMark renders a boolean as ✅ or ❌
func CheckMark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
