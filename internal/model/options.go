package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMode selects how streams are picked for a download.
type FormatMode string

const (
	// FormatBest downloads the best video plus best audio.
	FormatBest FormatMode = "best"
	// FormatResolution downloads video at exactly the chosen height.
	FormatResolution FormatMode = "resolution"
	// FormatAudioOnly downloads the best audio and transcodes it.
	FormatAudioOnly FormatMode = "audio-only"
)

// AudioCodec is the target codec for audio extraction.
type AudioCodec string

const (
	AudioMP3  AudioCodec = "mp3"
	AudioM4A  AudioCodec = "m4a"
	AudioOpus AudioCodec = "opus"
	AudioFLAC AudioCodec = "flac"
	AudioAAC  AudioCodec = "aac"
)

// Container is the output wrapper format for merged video downloads.
type Container string

const (
	ContainerMP4  Container = "mp4"
	ContainerMKV  Container = "mkv"
	ContainerWebM Container = "webm"
)

// Defaults used before the user changes anything.
const (
	DefaultFormatMode = FormatBest
	DefaultResolution = 1080
	DefaultAudioCodec = AudioMP3
	DefaultContainer  = ContainerMP4

	resolutionSuffix = "p"
)

// FormatModes lists the selectable format modes in display order.
func FormatModes() []FormatMode {
	return []FormatMode{FormatBest, FormatResolution, FormatAudioOnly}
}

// AudioCodecs lists the selectable audio codecs in display order.
func AudioCodecs() []AudioCodec {
	return []AudioCodec{AudioMP3, AudioM4A, AudioOpus, AudioFLAC, AudioAAC}
}

// Containers lists the selectable containers in display order.
func Containers() []Container {
	return []Container{ContainerMP4, ContainerMKV, ContainerWebM}
}

// DefaultResolutions is offered until metadata with real heights is loaded.
func DefaultResolutions() []int {
	return []int{2160, 1440, 1080, 720, 480, 360}
}

// IsValid reports whether m is a known format mode.
func (m FormatMode) IsValid() bool {
	for _, v := range FormatModes() {
		if v == m {
			return true
		}
	}
	return false
}

// IsValid reports whether c is a known audio codec.
func (c AudioCodec) IsValid() bool {
	for _, v := range AudioCodecs() {
		if v == c {
			return true
		}
	}
	return false
}

// IsValid reports whether c is a known container.
func (c Container) IsValid() bool {
	for _, v := range Containers() {
		if v == c {
			return true
		}
	}
	return false
}

// DownloadOptions holds everything the user picked for one download.
// Resolution only matters for FormatResolution, AudioCodec only for FormatAudioOnly.
type DownloadOptions struct {
	URL             string
	OutputDirectory string
	FormatMode      FormatMode
	Resolution      int // stream height in pixels
	AudioCodec      AudioCodec
	Container       Container
}

// TrimmedURL returns the URL without surrounding whitespace.
func (o DownloadOptions) TrimmedURL() string {
	return strings.TrimSpace(o.URL)
}

// Validate checks the fields that matter for the selected format mode.
func (o DownloadOptions) Validate() error {
	if o.TrimmedURL() == "" {
		return fmt.Errorf("url is empty")
	}
	if strings.TrimSpace(o.OutputDirectory) == "" {
		return fmt.Errorf("output directory is empty")
	}
	switch o.FormatMode {
	case FormatBest:
		if !o.Container.IsValid() {
			return fmt.Errorf("unsupported container: %q", o.Container)
		}
	case FormatResolution:
		if o.Resolution <= 0 {
			return fmt.Errorf("invalid resolution: %d", o.Resolution)
		}
		if !o.Container.IsValid() {
			return fmt.Errorf("unsupported container: %q", o.Container)
		}
	case FormatAudioOnly:
		if !o.AudioCodec.IsValid() {
			return fmt.Errorf("unsupported audio codec: %q", o.AudioCodec)
		}
	default:
		return fmt.Errorf("unsupported format mode: %q", o.FormatMode)
	}
	return nil
}

// ParseResolution converts a label such as "1080p" (or "1080") into a height.
func ParseResolution(label string) (int, error) {
	s := strings.TrimSuffix(strings.TrimSpace(strings.ToLower(label)), resolutionSuffix)
	height, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid resolution %q: %w", label, err)
	}
	if height <= 0 {
		return 0, fmt.Errorf("invalid resolution %q", label)
	}
	return height, nil
}

// ResolutionLabel formats a height the way the resolution selector shows it.
func ResolutionLabel(height int) string {
	return strconv.Itoa(height) + resolutionSuffix
}

// ResolutionLabels formats a list of heights for a selector.
func ResolutionLabels(heights []int) []string {
	labels := make([]string, 0, len(heights))
	for _, h := range heights {
		labels = append(labels, ResolutionLabel(h))
	}
	return labels
}
