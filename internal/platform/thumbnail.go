package platform

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder, most thumbnails are webp
)

// Thumbnail constants
const (
	ThumbnailTimeout   = 5 * time.Second
	ThumbnailMaxWidth  = 120
	ThumbnailMaxHeight = 90
	ThumbnailMaxBytes  = 8 << 20
)

// ThumbnailLoader fetches preview images over plain HTTP.
type ThumbnailLoader struct {
	client *http.Client
}

// NewThumbnailLoader returns a loader with the default 5s timeout.
func NewThumbnailLoader() *ThumbnailLoader {
	return &ThumbnailLoader{client: &http.Client{Timeout: ThumbnailTimeout}}
}

// NewThumbnailLoaderWithClient returns a loader using the given client.
func NewThumbnailLoaderWithClient(client *http.Client) *ThumbnailLoader {
	return &ThumbnailLoader{client: client}
}

// Load downloads and decodes the image at url and scales it to fit within
// ThumbnailMaxWidth x ThumbnailMaxHeight, keeping the aspect ratio.
func (l *ThumbnailLoader) Load(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("thumbnail request returned status %s", resp.Status)
	}

	src, _, err := image.Decode(io.LimitReader(resp.Body, ThumbnailMaxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail: %w", err)
	}

	return FitImage(src, ThumbnailMaxWidth, ThumbnailMaxHeight), nil
}

// FitImage scales src down to fit within maxW x maxH. Images that already fit
// are returned unchanged.
func FitImage(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (w <= maxW && h <= maxH) || w == 0 || h == 0 {
		return src
	}

	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	dw := max(1, int(float64(w)*scale))
	dh := max(1, int(float64(h)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
