package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatDuration renders a millisecond duration as MM:SS. Minutes are not
// wrapped into hours.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60_000
	seconds := (ms % 60_000) / 1000

	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// SnakeCaseToTitleCase turns "video_ready" into "Video Ready". A Caser is
// stateful, so one is built per call.
func SnakeCaseToTitleCase(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}
