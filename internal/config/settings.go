package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/simple-downloader/internal/model"
	"github.com/ytget/simple-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeyFormatMode  = "format_mode"
	KeyResolution  = "resolution"
	KeyAudioCodec  = "audio_codec"
	KeyContainer   = "container"
	KeyLanguage    = "app_language"
)

// Default values
const (
	DefaultLanguage     = "system"
	FallbackDownloadDir = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetFormatMode returns the last used format mode
func (s *Settings) GetFormatMode() model.FormatMode {
	mode := model.FormatMode(s.app.Preferences().String(KeyFormatMode))
	if !mode.IsValid() {
		return model.DefaultFormatMode
	}
	return mode
}

// SetFormatMode stores the format mode, ignoring unknown values
func (s *Settings) SetFormatMode(mode model.FormatMode) {
	if !mode.IsValid() {
		return
	}
	s.app.Preferences().SetString(KeyFormatMode, string(mode))
}

// GetResolution returns the preferred height for fixed-resolution downloads
func (s *Settings) GetResolution() int {
	return s.app.Preferences().IntWithFallback(KeyResolution, model.DefaultResolution)
}

// SetResolution stores the preferred height; non-positive values are ignored
func (s *Settings) SetResolution(height int) {
	if height <= 0 {
		return
	}
	s.app.Preferences().SetInt(KeyResolution, height)
}

// GetAudioCodec returns the audio codec for audio-only downloads
func (s *Settings) GetAudioCodec() model.AudioCodec {
	codec := model.AudioCodec(s.app.Preferences().String(KeyAudioCodec))
	if !codec.IsValid() {
		return model.DefaultAudioCodec
	}
	return codec
}

// SetAudioCodec stores the audio codec, ignoring unknown values
func (s *Settings) SetAudioCodec(codec model.AudioCodec) {
	if !codec.IsValid() {
		return
	}
	s.app.Preferences().SetString(KeyAudioCodec, string(codec))
}

// GetContainer returns the merge container for video downloads
func (s *Settings) GetContainer() model.Container {
	container := model.Container(s.app.Preferences().String(KeyContainer))
	if !container.IsValid() {
		return model.DefaultContainer
	}
	return container
}

// SetContainer stores the merge container, ignoring unknown values
func (s *Settings) SetContainer(container model.Container) {
	if !container.IsValid() {
		return
	}
	s.app.Preferences().SetString(KeyContainer, string(container))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// DownloadOptions assembles options for url from the stored preferences
func (s *Settings) DownloadOptions(url string) model.DownloadOptions {
	return model.DownloadOptions{
		URL:             url,
		OutputDirectory: s.GetDownloadDirectory(),
		FormatMode:      s.GetFormatMode(),
		Resolution:      s.GetResolution(),
		AudioCodec:      s.GetAudioCodec(),
		Container:       s.GetContainer(),
	}
}

// SaveOptions remembers everything in opts except the URL
func (s *Settings) SaveOptions(opts model.DownloadOptions) {
	if opts.OutputDirectory != "" {
		s.SetDownloadDirectory(opts.OutputDirectory)
	}
	s.SetFormatMode(opts.FormatMode)
	s.SetResolution(opts.Resolution)
	s.SetAudioCodec(opts.AudioCodec)
	s.SetContainer(opts.Container)
}
