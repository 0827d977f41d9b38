package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ytget/simple-downloader/internal/download"
)

func TestStatusForError(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty url", &download.ValidationError{Field: "url", Reason: "empty"}, "Please enter a URL"},
		{"bad option", &download.ValidationError{Field: "format mode", Reason: "unsupported"}, "Error: invalid format mode: unsupported"},
		{"missing ffmpeg", &download.MissingDependencyError{Tool: "ffmpeg", Purpose: "audio extraction"}, "Error: ffmpeg required for audio extraction"},
		{"directory", &download.IOError{Path: "/x", Err: errors.New("permission denied")}, "Error creating directory: permission denied"},
		{"fetch", &download.FetchError{URL: "u", Err: errors.New("Unsupported URL")}, "Error: Unsupported URL"},
		{"download", &download.DownloadError{Err: errors.New("HTTP Error 403: Forbidden")}, "Download failed: HTTP Error 403: Forbidden"},
		{"wrapped download", fmt.Errorf("job: %w", &download.DownloadError{Err: errors.New("boom")}), "Download failed: boom"},
		{"unknown", errors.New("odd"), "Error: odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusForError(l, tt.err); got != tt.want {
				t.Errorf("StatusForError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusForErrorLocalized(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	got := StatusForError(l, &download.ValidationError{Field: "url", Reason: "empty"})
	if got != "Пожалуйста, введите ссылку" {
		t.Errorf("StatusForError() = %q", got)
	}
}

func TestStatusForWarning(t *testing.T) {
	l := NewLocalization()

	if got := StatusForWarning(l, download.WarningNoFFmpegMerge); got != "Warning: ffmpeg not found, merging may fail" {
		t.Errorf("StatusForWarning() = %q", got)
	}
	if got := StatusForWarning(l, "something else"); got != "something else" {
		t.Errorf("StatusForWarning() = %q", got)
	}
}
