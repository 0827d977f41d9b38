package download

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/ytget/simple-downloader/internal/model"
)

// audioOnlyCodec marks streams without video.
const audioOnlyCodec = "none"

// Fetcher probes video metadata through the extractor.
type Fetcher struct {
	extractor Extractor
}

// NewFetcher creates a new metadata fetcher
func NewFetcher(extractor Extractor) *Fetcher {
	return &Fetcher{extractor: extractor}
}

// Fetch probes url and returns its metadata. An empty URL fails before any
// network access; probe failures are wrapped in a FetchError and not retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*model.VideoMetadata, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, &ValidationError{Field: "url", Reason: "empty"}
	}

	info, err := f.extractor.ExtractInfo(ctx, url)
	if err != nil {
		log.Printf("Metadata probe failed for %s: %v", url, err)
		return nil, &FetchError{URL: url, Err: err}
	}

	meta := &model.VideoMetadata{
		ID:               info.ID,
		Title:            info.Title,
		DurationSeconds:  int(info.Duration),
		Uploader:         info.Uploader,
		ThumbnailURL:     info.Thumbnail,
		AvailableHeights: AvailableHeights(info.Formats),
	}
	return meta, nil
}

// FetchAsync runs Fetch on a new goroutine and passes the outcome to done,
// on that goroutine. There is no way to cancel it.
func (f *Fetcher) FetchAsync(url string, done func(*model.VideoMetadata, error)) {
	go func() {
		meta, err := f.Fetch(context.Background(), url)
		done(meta, err)
	}()
}

// AvailableHeights returns the distinct heights of streams that carry video,
// highest first.
func AvailableHeights(formats []Format) []int {
	seen := make(map[int]struct{})
	heights := make([]int, 0, len(formats))
	for _, f := range formats {
		if f.VCodec == "" || f.VCodec == audioOnlyCodec || f.Height <= 0 {
			continue
		}
		if _, ok := seen[f.Height]; ok {
			continue
		}
		seen[f.Height] = struct{}{}
		heights = append(heights, f.Height)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(heights)))
	return heights
}
