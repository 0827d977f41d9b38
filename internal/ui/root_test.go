package ui

import (
	"context"
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/simple-downloader/internal/download"
	"github.com/ytget/simple-downloader/internal/model"
)

type fakeFetcher struct {
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*model.VideoMetadata, error) {
	f.urls = append(f.urls, url)
	return nil, errors.New("not used")
}

func (f *fakeFetcher) FetchAsync(url string, _ func(*model.VideoMetadata, error)) {
	f.urls = append(f.urls, url)
}

type fakeRunner struct {
	callback func(model.JobUpdate)
	running  bool
	current  *model.Job
}

func (r *fakeRunner) SetUpdateCallback(cb func(model.JobUpdate)) { r.callback = cb }

func (r *fakeRunner) Start(opts model.DownloadOptions) (*model.Job, error) {
	return &model.Job{Options: opts, State: model.JobStatePreparing}, nil
}

func (r *fakeRunner) IsRunning() bool { return r.running }

func (r *fakeRunner) Current() (model.Job, bool) {
	if r.current == nil {
		return model.Job{State: model.JobStateIdle}, false
	}
	return *r.current, true
}

type fakeThumbnails struct{}

func (fakeThumbnails) Load(context.Context, string) (image.Image, error) {
	return nil, errors.New("offline")
}

func newTestUI(t *testing.T) (*RootUI, *fakeFetcher, *fakeRunner) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("")

	fetcher := &fakeFetcher{}
	runner := &fakeRunner{}
	ui := NewRootUI(window, app, fetcher, runner, fakeThumbnails{})
	return ui, fetcher, runner
}

func TestNewRootUIRegistersCallback(t *testing.T) {
	_, _, runner := newTestUI(t)
	assert.NotNil(t, runner.callback)
}

func TestFormatChangeTogglesRows(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.formatRadio.SetSelected(string(model.FormatBest))
	assert.False(t, ui.resolutionRow.Visible())
	assert.False(t, ui.audioRow.Visible())

	ui.formatRadio.SetSelected(string(model.FormatResolution))
	assert.True(t, ui.resolutionRow.Visible())
	assert.False(t, ui.audioRow.Visible())

	ui.formatRadio.SetSelected(string(model.FormatAudioOnly))
	assert.False(t, ui.resolutionRow.Visible())
	assert.True(t, ui.audioRow.Visible())
}

func TestFetchInfoRequiresURL(t *testing.T) {
	ui, fetcher, _ := newTestUI(t)

	ui.urlEntry.SetText("   ")
	ui.onFetchInfo()

	assert.Empty(t, fetcher.urls)
	assert.Equal(t, "Please enter a URL", ui.statusLabel.Text)
}

func TestFetchInfoTrimsURL(t *testing.T) {
	ui, fetcher, _ := newTestUI(t)

	ui.urlEntry.SetText("  https://youtu.be/abc  ")
	ui.onFetchInfo()

	require.Len(t, fetcher.urls, 1)
	assert.Equal(t, "https://youtu.be/abc", fetcher.urls[0])
	assert.Equal(t, "Fetching video information...", ui.statusLabel.Text)
}

func TestApplyMetadataRepopulatesResolutions(t *testing.T) {
	ui, _, _ := newTestUI(t)

	meta := &model.VideoMetadata{
		ID:               "abc",
		Title:            "Clip",
		DurationSeconds:  125,
		Uploader:         "Someone",
		AvailableHeights: []int{1080, 720, 480},
	}
	ui.applyMetadata(meta, nil)

	assert.Equal(t, "Clip", ui.titleLabel.Text)
	assert.Equal(t, meta.Summary(), ui.summaryLabel.Text)
	assert.Equal(t, []string{"1080p", "720p", "480p"}, ui.resolutionSelect.Options)
	assert.Equal(t, "1080p", ui.resolutionSelect.Selected)
	assert.Equal(t, "Video information loaded successfully", ui.statusLabel.Text)
}

func TestApplyMetadataKeepsResolutionsWithoutHeights(t *testing.T) {
	ui, _, _ := newTestUI(t)
	before := ui.resolutionSelect.Options

	ui.applyMetadata(&model.VideoMetadata{Title: "Audio only"}, nil)

	assert.Equal(t, before, ui.resolutionSelect.Options)
}

func TestApplyMetadataError(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.applyMetadata(nil, &download.FetchError{URL: "x", Err: errors.New("Unsupported URL: x")})

	assert.Nil(t, ui.metadata)
	assert.Equal(t, "Error: Unsupported URL: x", ui.statusLabel.Text)
}

func TestApplyThumbnailIgnoresStaleMetadata(t *testing.T) {
	ui, _, _ := newTestUI(t)

	first := &model.VideoMetadata{Title: "first"}
	second := &model.VideoMetadata{Title: "second"}
	ui.applyMetadata(first, nil)
	ui.applyMetadata(second, nil)

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	ui.applyThumbnail(first, img)
	assert.Nil(t, ui.thumbnail.Image)

	ui.applyThumbnail(second, img)
	assert.Equal(t, img, ui.thumbnail.Image)
}

func TestCurrentOptions(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.urlEntry.SetText("https://youtu.be/abc")
	ui.outputEntry.SetText(" /tmp/out ")
	ui.formatRadio.SetSelected(string(model.FormatResolution))
	ui.resolutionSelect.SetSelected("720p")
	ui.audioSelect.SetSelected(string(model.AudioOpus))
	ui.containerSelect.SetSelected(string(model.ContainerMKV))

	opts := ui.currentOptions()
	assert.Equal(t, "https://youtu.be/abc", opts.URL)
	assert.Equal(t, "/tmp/out", opts.OutputDirectory)
	assert.Equal(t, model.FormatResolution, opts.FormatMode)
	assert.Equal(t, 720, opts.Resolution)
	assert.Equal(t, model.AudioOpus, opts.AudioCodec)
	assert.Equal(t, model.ContainerMKV, opts.Container)
}

func TestDownloadClickRequiresURL(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.onDownloadClick()

	assert.False(t, ui.downloadBtn.Disabled())
	assert.Equal(t, "Please enter a URL", ui.statusLabel.Text)
}

func TestDownloadClickIgnoredWhileRunning(t *testing.T) {
	ui, _, runner := newTestUI(t)
	runner.running = true

	ui.urlEntry.SetText("https://youtu.be/abc")
	ui.onDownloadClick()

	assert.False(t, ui.downloadBtn.Disabled())
	assert.Equal(t, "Ready to download", ui.statusLabel.Text)
}

func TestApplyJobUpdateLifecycle(t *testing.T) {
	ui, _, _ := newTestUI(t)
	job := model.Job{
		ID:      "job-1",
		Options: model.DownloadOptions{URL: "https://youtu.be/abc", OutputDirectory: "/tmp/out"},
	}

	job.State = model.JobStatePreparing
	ui.applyJobUpdate(model.JobUpdate{Job: job})
	assert.True(t, ui.downloadBtn.Disabled())
	assert.Equal(t, "Downloading...", ui.downloadBtn.Text)
	assert.Equal(t, 0.0, ui.progressBar.Value)

	job.State = model.JobStateRunning
	job.Progress = 0.4
	job.StatusText = "2.0 MB/s • ETA: 5s"
	ui.applyJobUpdate(model.JobUpdate{Job: job})
	assert.InDelta(t, 0.4, ui.progressBar.Value, 1e-9)
	assert.Equal(t, "2.0 MB/s • ETA: 5s", ui.statusLabel.Text)

	job.State = model.JobStateCompleted
	job.Progress = 1
	job.OutputPath = "/tmp/out/Clip [abc].mp4"
	ui.applyJobUpdate(model.JobUpdate{Job: job})
	assert.False(t, ui.downloadBtn.Disabled())
	assert.Equal(t, "Download", ui.downloadBtn.Text)
	assert.Equal(t, 1.0, ui.progressBar.Value)
	assert.Contains(t, ui.statusLabel.Text, "Download completed successfully!")
	assert.True(t, ui.revealBtn.Visible())
	assert.Equal(t, job.OutputPath, ui.lastOutput)
}

func TestApplyJobUpdateFailure(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ui.progressBar.SetValue(0.7)

	job := model.Job{State: model.JobStateFailed, LastError: "HTTP Error 403: Forbidden"}
	ui.applyJobUpdate(model.JobUpdate{
		Job: job,
		Err: &download.DownloadError{Err: errors.New("HTTP Error 403: Forbidden")},
	})

	assert.False(t, ui.downloadBtn.Disabled())
	assert.Equal(t, 0.0, ui.progressBar.Value)
	assert.Equal(t, "Download failed: HTTP Error 403: Forbidden", ui.statusLabel.Text)
}

func TestApplyJobUpdateWarning(t *testing.T) {
	ui, _, _ := newTestUI(t)

	job := model.Job{State: model.JobStatePreparing, Warning: download.WarningNoFFmpegMerge}
	ui.applyJobUpdate(model.JobUpdate{Job: job})

	assert.Equal(t, "Warning: ffmpeg not found, merging may fail", ui.statusLabel.Text)
}

func TestLanguageChangeRefreshesTexts(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.onLanguageChange("ru")

	assert.Equal(t, "ru", ui.settings.GetLanguage())
	assert.Equal(t, "Скачать", ui.downloadBtn.Text)
	assert.Equal(t, "Вставить", ui.pasteBtn.Text)
	assert.Equal(t, "Видео не загружено", ui.titleLabel.Text)
}

func TestLanguageChangeWhileDownloading(t *testing.T) {
	ui, _, runner := newTestUI(t)
	runner.current = &model.Job{ID: "job-1", State: model.JobStateRunning}

	ui.onLanguageChange("pt")

	assert.Equal(t, "Baixando...", ui.downloadBtn.Text)
}
