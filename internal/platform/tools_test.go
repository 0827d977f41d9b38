package platform

import (
	"errors"
	"os/exec"
	"testing"
)

func TestToolLocator_HasFFmpeg(t *testing.T) {
	found := NewToolLocatorWithLookPath(func(name string) (string, error) {
		if name != FFmpegCommand {
			t.Errorf("Expected lookup of %q, got %q", FFmpegCommand, name)
		}
		return "/usr/bin/ffmpeg", nil
	})
	if !found.HasFFmpeg() {
		t.Error("Expected ffmpeg to be reported as present")
	}

	missing := NewToolLocatorWithLookPath(func(string) (string, error) {
		return "", exec.ErrNotFound
	})
	if missing.HasFFmpeg() {
		t.Error("Expected ffmpeg to be reported as missing")
	}
}

func TestToolLocator_Has(t *testing.T) {
	locator := NewToolLocatorWithLookPath(func(name string) (string, error) {
		if name == "yt-dlp" {
			return "/opt/yt-dlp", nil
		}
		return "", errors.New("not found")
	})

	if !locator.Has("yt-dlp") {
		t.Error("Expected yt-dlp to be found")
	}
	if locator.Has("ffprobe") {
		t.Error("Expected ffprobe to be missing")
	}
}
