package download

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/ytget/simple-downloader/internal/model"
)

// Format selectors understood by yt-dlp
const (
	// SelectorBest is best video plus best audio, else best combined.
	SelectorBest = "bv*+ba/b"
	// SelectorHeightTemplate is best video at the height plus best audio,
	// else best combined at the height.
	SelectorHeightTemplate = "bv*[height=%d]+ba/b[height=%d]"
	// SelectorAudio is best audio, else best combined.
	SelectorAudio = "bestaudio/best"
)

// Post-processing constants
const (
	PostProcessorExtractAudio = "FFmpegExtractAudio"
	AudioQualityBest          = "0"
)

// OutputTemplateName names artifacts "<title> [<id>].<ext>".
const OutputTemplateName = "%(title)s [%(id)s].%(ext)s"

// WarningNoFFmpegMerge is raised for fixed-resolution downloads without ffmpeg.
const WarningNoFFmpegMerge = "ffmpeg not found, merging may fail"

// ProgressHook receives progress events from the library.
type ProgressHook func(model.ProgressEvent)

// PostProcessor is one step the library runs after fetching streams.
type PostProcessor struct {
	Key              string
	PreferredCodec   string
	PreferredQuality string
}

// Config is the option set handed to the download library.
type Config struct {
	Quiet             bool
	NoWarnings        bool
	NoPlaylist        bool
	OutputTemplate    string
	Format            string
	MergeOutputFormat string
	PostProcessors    []PostProcessor
	ProgressHooks     []ProgressHook
}

// ProbeConfig is used for metadata probes: nothing is downloaded and the
// library stays silent.
func ProbeConfig() Config {
	return Config{
		Quiet:      true,
		NoWarnings: true,
		NoPlaylist: true,
	}
}

// BuildConfig maps opts onto a library configuration. hasFFmpeg tells whether
// the transcoding tool is installed; audio extraction fails without it, while
// fixed-resolution downloads only produce a warning.
func BuildConfig(opts model.DownloadOptions, hasFFmpeg bool) (Config, []string, error) {
	cfg := Config{
		NoWarnings:     true,
		NoPlaylist:     true,
		OutputTemplate: OutputTemplate(opts.OutputDirectory),
	}
	var warnings []string

	switch opts.FormatMode {
	case model.FormatBest:
		cfg.Format = SelectorBest
		cfg.MergeOutputFormat = string(opts.Container)
	case model.FormatResolution:
		cfg.Format = HeightSelector(opts.Resolution)
		cfg.MergeOutputFormat = string(opts.Container)
		if !hasFFmpeg {
			warnings = append(warnings, WarningNoFFmpegMerge)
		}
	case model.FormatAudioOnly:
		if !hasFFmpeg {
			return Config{}, nil, &MissingDependencyError{Tool: "ffmpeg", Purpose: "audio extraction"}
		}
		cfg.Format = SelectorAudio
		cfg.PostProcessors = []PostProcessor{{
			Key:              PostProcessorExtractAudio,
			PreferredCodec:   string(opts.AudioCodec),
			PreferredQuality: AudioQualityBest,
		}}
	default:
		return Config{}, nil, &ValidationError{Field: "format mode", Reason: fmt.Sprintf("unsupported value %q", opts.FormatMode)}
	}

	return cfg, warnings, nil
}

// HeightSelector returns the selector for exactly the given height.
func HeightSelector(height int) string {
	return fmt.Sprintf(SelectorHeightTemplate, height, height)
}

// OutputTemplate returns the full output template under dir.
func OutputTemplate(dir string) string {
	return filepath.Join(dir, OutputTemplateName)
}

var templateField = regexp.MustCompile(`%\((\w+)\)s`)

// ExpandOutputTemplate substitutes %(name)s placeholders with fields.
// Unknown placeholders are left untouched.
func ExpandOutputTemplate(tmpl string, fields map[string]string) string {
	return templateField.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := templateField.FindStringSubmatch(m)[1]
		if v, ok := fields[name]; ok {
			return v
		}
		return m
	})
}

// audioExtensions lists the file extension FFmpegExtractAudio writes per codec.
var audioExtensions = map[model.AudioCodec]string{
	model.AudioMP3:  "mp3",
	model.AudioM4A:  "m4a",
	model.AudioAAC:  "m4a",
	model.AudioOpus: "opus",
	model.AudioFLAC: "flac",
}

// AudioExtension returns the extension of the file extracted with codec.
// aac is stored in an m4a container.
func AudioExtension(codec model.AudioCodec) string {
	if ext, ok := audioExtensions[codec]; ok {
		return ext
	}
	return string(codec)
}

// expectedExt is the extension the artifact ends up with for opts.
func expectedExt(opts model.DownloadOptions) string {
	if opts.FormatMode == model.FormatAudioOnly {
		return AudioExtension(opts.AudioCodec)
	}
	return string(opts.Container)
}
