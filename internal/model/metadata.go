package model

import (
	"fmt"
	"strings"
)

// Metadata display constants
const (
	DurationUnknown   = "Duration: Unknown"
	UploaderSeparator = " • "
	DefaultTitle      = "Unknown"

	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// VideoMetadata is the result of a metadata probe. It is never mutated after
// creation; a new fetch replaces it wholesale.
type VideoMetadata struct {
	ID               string
	Title            string
	DurationSeconds  int    // 0 if unknown
	Uploader         string // empty if unknown
	ThumbnailURL     string // empty if unknown
	AvailableHeights []int  // distinct, descending
}

// DisplayTitle returns the title or a placeholder when the source had none.
func (m *VideoMetadata) DisplayTitle() string {
	if strings.TrimSpace(m.Title) == "" {
		return DefaultTitle
	}
	return m.Title
}

// Summary returns the duration line, followed by the uploader when known.
func (m *VideoMetadata) Summary() string {
	var b strings.Builder
	if m.DurationSeconds > 0 {
		b.WriteString("Duration: ")
		b.WriteString(FormatDuration(m.DurationSeconds))
	} else {
		b.WriteString(DurationUnknown)
	}
	if m.Uploader != "" {
		b.WriteString(UploaderSeparator)
		b.WriteString(m.Uploader)
	}
	return b.String()
}

// HeightLabels returns the available heights as selector labels ("1080p").
func (m *VideoMetadata) HeightLabels() []string {
	return ResolutionLabels(m.AvailableHeights)
}

// FormatDuration renders seconds as "1h 2m 3s", or "2m 3s" under an hour.
func FormatDuration(seconds int) string {
	hours := seconds / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute
	secs := seconds % secondsPerMinute
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	return fmt.Sprintf("%dm %ds", minutes, secs)
}
