// Package download coordinates the external yt-dlp library (via
// github.com/lrstanley/go-ytdlp): it probes metadata, maps the user's options
// onto a library configuration, runs the single download job on a background
// goroutine and forwards rendered progress to the UI.
package download
