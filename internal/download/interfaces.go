package download

import (
	"context"

	"github.com/ytget/simple-downloader/internal/model"
)

// Format is one stream offered by the source, as reported by a probe.
type Format struct {
	ID     string
	Height int    // 0 when unknown or audio-only
	VCodec string // empty when unknown, "none" for audio-only streams
}

// Info is the raw result of a metadata probe.
type Info struct {
	ID        string
	Title     string
	Duration  float64 // seconds, 0 when unknown
	Uploader  string
	Thumbnail string
	Formats   []Format
}

// Result describes what a finished download produced. Any field may be empty.
type Result struct {
	ID       string
	Title    string
	Ext      string
	Filename string
}

// Extractor is the external extraction/download library.
type Extractor interface {
	// ExtractInfo probes url without downloading anything.
	ExtractInfo(ctx context.Context, url string) (*Info, error)
	// Download fetches url according to cfg, calling cfg.ProgressHooks as it goes.
	Download(ctx context.Context, url string, cfg Config) (*Result, error)
}

// MetadataFetcher defines the interface for probing video metadata.
type MetadataFetcher interface {
	Fetch(ctx context.Context, url string) (*model.VideoMetadata, error)
	FetchAsync(url string, done func(*model.VideoMetadata, error))
}

// JobRunner defines the interface for the single-job download runner.
type JobRunner interface {
	SetUpdateCallback(func(model.JobUpdate))
	Start(opts model.DownloadOptions) (*model.Job, error)
	IsRunning() bool
	Current() (model.Job, bool)
}

// TranscoderDetector reports whether ffmpeg is available.
type TranscoderDetector interface {
	HasFFmpeg() bool
}
