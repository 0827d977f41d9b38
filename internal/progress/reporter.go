// Package progress turns raw download progress events into the fraction and
// status line shown under the progress bar.
package progress

import (
	"fmt"
	"strings"

	"github.com/ytget/simple-downloader/internal/model"
)

// Status text constants
const (
	TextDownloading = "Downloading..."
	TextProcessing  = "Processing..."
	Separator       = " • "

	bytesPerMB = 1024 * 1024
)

// Status is what the UI renders for one progress event.
type Status struct {
	Fraction float64 // always within [0, 1]
	Text     string
}

// Render maps an event to a Status. It has no state and never panics on
// missing totals.
func Render(ev model.ProgressEvent) Status {
	if ev.Phase == model.PhaseFinished {
		return Status{Fraction: 1.0, Text: TextProcessing}
	}

	return Status{
		Fraction: Fraction(ev.DownloadedBytes, ev.TotalBytes, ev.TotalBytesEstimate),
		Text:     statusText(ev.SpeedBytesPerSec, ev.ETASeconds),
	}
}

// Fraction divides downloaded by the exact total, falling back to the
// estimate, and returns 0 when neither is known.
func Fraction(downloaded, total, estimate int64) float64 {
	denom := total
	if denom <= 0 {
		denom = estimate
	}
	if denom <= 0 || downloaded <= 0 {
		return 0
	}
	f := float64(downloaded) / float64(denom)
	if f > 1 {
		return 1
	}
	return f
}

// FormatSpeed renders bytes per second as MB/s with one decimal.
func FormatSpeed(bytesPerSec float64) string {
	return fmt.Sprintf("%.1f MB/s", bytesPerSec/bytesPerMB)
}

// FormatETA renders seconds as "ETA: 1m 5s", dropping minutes when zero.
func FormatETA(seconds int) string {
	minutes, secs := seconds/60, seconds%60
	if minutes > 0 {
		return fmt.Sprintf("ETA: %dm %ds", minutes, secs)
	}
	return fmt.Sprintf("ETA: %ds", secs)
}

func statusText(speed float64, eta int) string {
	parts := make([]string, 0, 2)
	if speed > 0 {
		parts = append(parts, FormatSpeed(speed))
	}
	if eta > 0 {
		parts = append(parts, FormatETA(eta))
	}
	if len(parts) == 0 {
		return TextDownloading
	}
	return strings.Join(parts, Separator)
}
