package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/simple-downloader/internal/model"
)

func TestRender_Fraction(t *testing.T) {
	tests := []struct {
		name     string
		event    model.ProgressEvent
		expected float64
	}{
		{"exact total", model.ProgressEvent{DownloadedBytes: 50, TotalBytes: 200}, 0.25},
		{"estimate fallback", model.ProgressEvent{DownloadedBytes: 50, TotalBytesEstimate: 100}, 0.5},
		{"exact wins over estimate", model.ProgressEvent{DownloadedBytes: 50, TotalBytes: 100, TotalBytesEstimate: 1000}, 0.5},
		{"no totals", model.ProgressEvent{DownloadedBytes: 50}, 0},
		{"nothing known", model.ProgressEvent{}, 0},
		{"overshoot is clamped", model.ProgressEvent{DownloadedBytes: 150, TotalBytesEstimate: 100}, 1},
		{"negative total", model.ProgressEvent{DownloadedBytes: 10, TotalBytes: -5}, 0},
	}

	for _, test := range tests {
		test.event.Phase = model.PhaseDownloading
		status := Render(test.event)
		assert.InDelta(t, test.expected, status.Fraction, 1e-9, test.name)
		assert.GreaterOrEqual(t, status.Fraction, 0.0, test.name)
		assert.LessOrEqual(t, status.Fraction, 1.0, test.name)
	}
}

func TestRender_Text(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		eta      int
		expected string
	}{
		{"nothing", 0, 0, "Downloading..."},
		{"speed only", 1.5 * 1024 * 1024, 0, "1.5 MB/s"},
		{"eta seconds only", 0, 42, "ETA: 42s"},
		{"eta with minutes", 0, 125, "ETA: 2m 5s"},
		{"both", 2 * 1024 * 1024, 61, "2.0 MB/s • ETA: 1m 1s"},
		{"exact minute", 0, 60, "ETA: 1m 0s"},
	}

	for _, test := range tests {
		status := Render(model.ProgressEvent{
			Phase:            model.PhaseDownloading,
			SpeedBytesPerSec: test.speed,
			ETASeconds:       test.eta,
		})
		assert.Equal(t, test.expected, status.Text, test.name)
	}
}

func TestRender_Finished(t *testing.T) {
	status := Render(model.ProgressEvent{Phase: model.PhaseFinished, DownloadedBytes: 1, TotalBytes: 10})
	assert.Equal(t, 1.0, status.Fraction)
	assert.Equal(t, TextProcessing, status.Text)
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "0.1 MB/s", FormatSpeed(100*1024))
	assert.Equal(t, "10.0 MB/s", FormatSpeed(10*1024*1024))
}
