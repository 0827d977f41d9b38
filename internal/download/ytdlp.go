package download

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/simple-downloader/internal/model"
)

// ProgressInterval is how often go-ytdlp reports progress.
const ProgressInterval = 500 * time.Millisecond

// YTDLP implements Extractor on top of the yt-dlp binary.
type YTDLP struct {
	executable string // empty means go-ytdlp's own resolution
}

// NewYTDLP creates an extractor that lets go-ytdlp locate yt-dlp.
func NewYTDLP() *YTDLP {
	return &YTDLP{}
}

// NewYTDLPWithExecutable creates an extractor that runs a specific yt-dlp binary.
func NewYTDLPWithExecutable(path string) *YTDLP {
	return &YTDLP{executable: path}
}

// EnsureInstalled makes sure a yt-dlp binary is available, downloading one
// into the user cache when none is found.
func EnsureInstalled(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("could not install yt-dlp: %w", err)
	}
	return nil
}

// ExtractInfo probes url without downloading.
func (y *YTDLP) ExtractInfo(ctx context.Context, url string) (*Info, error) {
	cmd := y.command(ProbeConfig()).
		SkipDownload().
		PrintJSON()

	result, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, err
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 || infos[0] == nil {
		return nil, fmt.Errorf("no video information returned for %s", url)
	}

	return infoFromExtracted(infos[0]), nil
}

// Download fetches url according to cfg.
func (y *YTDLP) Download(ctx context.Context, url string, cfg Config) (*Result, error) {
	cmd := y.command(cfg)

	res := &Result{}
	started := time.Now()
	cmd.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		if update.Info != nil {
			if update.Info.ID != "" {
				res.ID = update.Info.ID
			}
			if update.Info.Title != nil && *update.Info.Title != "" {
				res.Title = *update.Info.Title
			}
			if update.Info.Filename != nil && *update.Info.Filename != "" {
				res.Filename = *update.Info.Filename
				res.Ext = strings.TrimPrefix(filepath.Ext(res.Filename), ".")
			}
		}

		ev, ok := progressEventFromUpdate(update, started, time.Now())
		if !ok {
			return
		}
		for _, hook := range cfg.ProgressHooks {
			hook(ev)
		}
	})

	if _, err := cmd.Run(ctx, url); err != nil {
		return nil, err
	}

	applyPostProcessors(res, cfg)
	return res, nil
}

// applyPostProcessors points res at the file left behind by post-processing:
// audio extraction replaces the downloaded container.
func applyPostProcessors(res *Result, cfg Config) {
	if res.Filename == "" {
		return
	}
	for _, pp := range cfg.PostProcessors {
		if pp.Key != PostProcessorExtractAudio || pp.PreferredCodec == "" {
			continue
		}
		ext := AudioExtension(model.AudioCodec(pp.PreferredCodec))
		res.Filename = strings.TrimSuffix(res.Filename, filepath.Ext(res.Filename)) + "." + ext
		res.Ext = ext
	}
}

// command translates cfg into a go-ytdlp command.
func (y *YTDLP) command(cfg Config) *ytdlp.Command {
	cmd := ytdlp.New()
	if y.executable != "" {
		cmd = cmd.SetExecutable(y.executable)
	}
	if cfg.Quiet {
		cmd = cmd.Quiet()
	}
	if cfg.NoWarnings {
		cmd = cmd.NoWarnings()
	}
	if cfg.NoPlaylist {
		cmd = cmd.NoPlaylist()
	}
	if cfg.OutputTemplate != "" {
		cmd = cmd.Output(cfg.OutputTemplate)
	}
	if cfg.Format != "" {
		cmd = cmd.Format(cfg.Format)
	}
	if cfg.MergeOutputFormat != "" {
		cmd = cmd.MergeOutputFormat(cfg.MergeOutputFormat)
	}
	for _, pp := range cfg.PostProcessors {
		switch pp.Key {
		case PostProcessorExtractAudio:
			cmd = cmd.ExtractAudio()
			if pp.PreferredCodec != "" {
				cmd = cmd.AudioFormat(pp.PreferredCodec)
			}
			if pp.PreferredQuality != "" {
				cmd = cmd.AudioQuality(pp.PreferredQuality)
			}
		default:
			log.Printf("Ignoring unsupported post-processor %q", pp.Key)
		}
	}
	return cmd
}

// progressEventFromUpdate converts a go-ytdlp update. Updates for phases the
// UI does not show are skipped.
func progressEventFromUpdate(update ytdlp.ProgressUpdate, started, now time.Time) (model.ProgressEvent, bool) {
	ev := model.ProgressEvent{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}

	switch update.Status {
	case ytdlp.ProgressStatusDownloading:
		ev.Phase = model.PhaseDownloading
	case ytdlp.ProgressStatusFinished, ytdlp.ProgressStatusPostProcessing:
		ev.Phase = model.PhaseFinished
		return ev, true
	default:
		return ev, false
	}

	if !update.Started.IsZero() {
		started = update.Started
	}
	if elapsed := now.Sub(started).Seconds(); elapsed > 0 && update.DownloadedBytes > 0 {
		ev.SpeedBytesPerSec = float64(update.DownloadedBytes) / elapsed
	}

	if eta := update.ETA(); eta > 0 {
		ev.ETASeconds = int(eta.Seconds())
	}

	return ev, true
}

// infoFromExtracted copies the fields the app uses out of a go-ytdlp probe.
func infoFromExtracted(src *ytdlp.ExtractedInfo) *Info {
	info := &Info{ID: src.ID}
	if src.Title != nil {
		info.Title = *src.Title
	}
	if src.Duration != nil {
		info.Duration = *src.Duration
	}
	if src.Uploader != nil {
		info.Uploader = *src.Uploader
	}
	if src.Thumbnail != nil {
		info.Thumbnail = *src.Thumbnail
	}

	info.Formats = make([]Format, 0, len(src.Formats))
	for _, f := range src.Formats {
		if f == nil {
			continue
		}
		format := Format{}
		if f.FormatID != nil {
			format.ID = *f.FormatID
		}
		if f.Height != nil {
			format.Height = int(*f.Height)
		}
		if f.VCodec != nil {
			format.VCodec = *f.VCodec
		}
		info.Formats = append(info.Formats, format)
	}
	return info
}
