package ui

import (
	"context"
	"errors"
	"image"
	"log"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/time/rate"

	"github.com/ytget/simple-downloader/internal/config"
	"github.com/ytget/simple-downloader/internal/download"
	"github.com/ytget/simple-downloader/internal/model"
	"github.com/ytget/simple-downloader/internal/platform"
)

// ThumbnailSource loads preview images for fetched videos.
type ThumbnailSource interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization

	fetcher    download.MetadataFetcher
	runner     download.JobRunner
	thumbnails ThumbnailSource

	urlLabel     *widget.Label
	urlEntry     *widget.Entry
	pasteBtn     *widget.Button
	fetchBtn     *widget.Button
	infoCard     *widget.Card
	thumbnail    *canvas.Image
	titleLabel   *widget.Label
	summaryLabel *widget.Label

	optionsCard      *widget.Card
	formatLabel      *widget.Label
	formatRadio      *widget.RadioGroup
	resolutionLabel  *widget.Label
	resolutionSelect *widget.Select
	resolutionRow    *fyne.Container
	audioLabel       *widget.Label
	audioSelect      *widget.Select
	audioRow         *fyne.Container
	containerLabel   *widget.Label
	containerSelect  *widget.Select

	outputCard  *widget.Card
	outputEntry *widget.Entry
	browseBtn   *widget.Button

	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	downloadBtn *widget.Button
	revealBtn   *widget.Button

	// Touched only on the Fyne thread.
	metadata     *model.VideoMetadata
	lastOutput   string
	progressGate *rate.Limiter
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, fetcher download.MetadataFetcher, runner download.JobRunner, thumbnails ThumbnailSource) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		fetcher:      fetcher,
		runner:       runner,
		thumbnails:   thumbnails,
		progressGate: rate.NewLimiter(rate.Every(ProgressUIInterval), 1),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.runner.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	l := ui.localization

	// URL section
	ui.urlLabel = widget.NewLabelWithStyle(l.GetText(KeyVideoURL), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchInfo()
	}
	ui.pasteBtn = widget.NewButton(l.GetText(KeyPaste), ui.onPaste)
	ui.fetchBtn = widget.NewButton(l.GetText(KeyFetchInfo), ui.onFetchInfo)
	ui.fetchBtn.Importance = widget.HighImportance
	urlRow := container.NewBorder(nil, nil, nil, container.NewHBox(ui.pasteBtn, ui.fetchBtn), ui.urlEntry)

	// Video information
	ui.thumbnail = canvas.NewImageFromImage(nil)
	ui.thumbnail.FillMode = canvas.ImageFillContain
	ui.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	ui.titleLabel = widget.NewLabelWithStyle(l.GetText(KeyNoVideoLoaded), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.titleLabel.Wrapping = fyne.TextWrapWord
	ui.summaryLabel = widget.NewLabel("")
	ui.infoCard = widget.NewCard(l.GetText(KeyVideoInfo), "",
		container.NewBorder(nil, nil, ui.thumbnail, nil, container.NewVBox(ui.titleLabel, ui.summaryLabel)))

	// Download options
	ui.formatLabel = widget.NewLabel(l.GetText(KeyFormat))
	ui.formatRadio = widget.NewRadioGroup(formatModeOptions(), ui.onFormatChange)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.Required = true

	ui.resolutionLabel = widget.NewLabel(l.GetText(KeyResolution))
	ui.resolutionSelect = widget.NewSelect(model.ResolutionLabels(model.DefaultResolutions()), nil)
	ui.resolutionSelect.SetSelected(model.ResolutionLabel(ui.settings.GetResolution()))
	ui.resolutionRow = container.NewHBox(ui.resolutionLabel, ui.resolutionSelect)

	ui.audioLabel = widget.NewLabel(l.GetText(KeyAudioFormat))
	ui.audioSelect = widget.NewSelect(audioCodecOptions(), nil)
	ui.audioSelect.SetSelected(string(ui.settings.GetAudioCodec()))
	ui.audioRow = container.NewHBox(ui.audioLabel, ui.audioSelect)

	ui.containerLabel = widget.NewLabel(l.GetText(KeyContainer))
	ui.containerSelect = widget.NewSelect(containerOptions(), nil)
	ui.containerSelect.SetSelected(string(ui.settings.GetContainer()))

	// Selecting the mode last so the rows above exist when onFormatChange runs.
	ui.formatRadio.SetSelected(string(ui.settings.GetFormatMode()))

	ui.optionsCard = widget.NewCard(l.GetText(KeyDownloadOptions), "", container.NewVBox(
		container.NewHBox(ui.formatLabel, ui.formatRadio),
		ui.resolutionRow,
		ui.audioRow,
		container.NewHBox(ui.containerLabel, ui.containerSelect),
	))

	// Output directory
	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.browseBtn = widget.NewButton(l.GetText(KeyBrowse), ui.onBrowse)
	ui.outputCard = widget.NewCard(l.GetText(KeySaveLocation), "",
		container.NewBorder(nil, nil, nil, ui.browseBtn, ui.outputEntry))

	// Progress and actions
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(l.GetText(KeyReady))
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.downloadBtn = widget.NewButton(l.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.revealBtn = widget.NewButton(l.GetText(KeyShowInFolder), ui.onRevealOutput)
	ui.revealBtn.Importance = widget.LowImportance
	ui.revealBtn.Hide()

	content := container.NewVBox(
		ui.urlLabel,
		urlRow,
		ui.infoCard,
		ui.optionsCard,
		ui.outputCard,
		ui.progressBar,
		ui.statusLabel,
		container.NewHBox(ui.downloadBtn, ui.revealBtn),
	)

	ui.window.SetContent(container.NewPadded(container.NewVScroll(content)))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	languages := ui.settings.GetLanguageOptions()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	current := ui.settings.GetLanguage()
	for _, code := range codes {
		langCode := code
		item := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = current == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all static texts with the current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.urlLabel.SetText(l.GetText(KeyVideoURL))
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.pasteBtn.SetText(l.GetText(KeyPaste))
	ui.fetchBtn.SetText(l.GetText(KeyFetchInfo))
	ui.infoCard.SetTitle(l.GetText(KeyVideoInfo))
	if ui.metadata == nil {
		ui.titleLabel.SetText(l.GetText(KeyNoVideoLoaded))
	}
	ui.optionsCard.SetTitle(l.GetText(KeyDownloadOptions))
	ui.formatLabel.SetText(l.GetText(KeyFormat))
	ui.resolutionLabel.SetText(l.GetText(KeyResolution))
	ui.audioLabel.SetText(l.GetText(KeyAudioFormat))
	ui.containerLabel.SetText(l.GetText(KeyContainer))
	ui.outputCard.SetTitle(l.GetText(KeySaveLocation))
	ui.browseBtn.SetText(l.GetText(KeyBrowse))
	ui.revealBtn.SetText(l.GetText(KeyShowInFolder))
	if job, _ := ui.runner.Current(); job.State.IsActive() {
		ui.downloadBtn.SetText(l.GetText(KeyDownloading))
	} else {
		ui.downloadBtn.SetText(l.GetText(KeyDownload))
	}
}

// setStatus shows message in the status line, in the error color when isError
func (ui *RootUI) setStatus(message string, isError bool) {
	if isError {
		ui.statusLabel.Importance = widget.DangerImportance
	} else {
		ui.statusLabel.Importance = widget.MediumImportance
	}
	ui.statusLabel.SetText(message)
}

// onPaste replaces the URL with the clipboard contents
func (ui *RootUI) onPaste() {
	text := strings.TrimSpace(ui.window.Clipboard().Content())
	if text == "" {
		ui.setStatus(ui.localization.GetText(KeyPasteFailed), true)
		return
	}
	ui.urlEntry.SetText(text)
}

// onFetchInfo probes the entered URL in the background
func (ui *RootUI) onFetchInfo() {
	url := strings.TrimSpace(ui.urlEntry.Text)
	if url == "" {
		ui.setStatus(ui.localization.GetText(KeyPleaseEnterURL), true)
		return
	}

	ui.setStatus(ui.localization.GetText(KeyFetchingInfo), false)
	ui.fetcher.FetchAsync(url, func(meta *model.VideoMetadata, err error) {
		fyne.Do(func() {
			ui.applyMetadata(meta, err)
		})
	})
}

// applyMetadata renders a fetch result. Results are applied in arrival
// order, so the last fetch to finish wins.
func (ui *RootUI) applyMetadata(meta *model.VideoMetadata, err error) {
	if err != nil {
		log.Printf("Fetch failed: %v", err)
		ui.setStatus(StatusForError(ui.localization, err), true)
		return
	}

	ui.metadata = meta
	ui.titleLabel.SetText(meta.DisplayTitle())
	ui.summaryLabel.SetText(meta.Summary())

	if labels := meta.HeightLabels(); len(labels) > 0 {
		ui.resolutionSelect.Options = labels
		ui.resolutionSelect.SetSelected(labels[0])
	}

	ui.thumbnail.Image = nil
	ui.thumbnail.Refresh()
	if meta.ThumbnailURL != "" {
		ui.loadThumbnail(meta)
	}

	ui.setStatus(ui.localization.GetText(KeyInfoLoaded), false)
}

// loadThumbnail fetches the preview for meta; failures are only logged
func (ui *RootUI) loadThumbnail(meta *model.VideoMetadata) {
	if ui.thumbnails == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), platform.ThumbnailTimeout)
		defer cancel()

		img, err := ui.thumbnails.Load(ctx, meta.ThumbnailURL)
		if err != nil {
			log.Printf("Failed to load thumbnail %s: %v", meta.ThumbnailURL, err)
			return
		}

		fyne.Do(func() {
			ui.applyThumbnail(meta, img)
		})
	}()
}

// applyThumbnail shows img unless a newer fetch replaced meta meanwhile
func (ui *RootUI) applyThumbnail(meta *model.VideoMetadata, img image.Image) {
	if ui.metadata != meta {
		return
	}
	ui.thumbnail.Image = img
	ui.thumbnail.Refresh()
}

// onFormatChange shows only the selectors relevant to mode
func (ui *RootUI) onFormatChange(mode string) {
	switch model.FormatMode(mode) {
	case model.FormatResolution:
		ui.resolutionRow.Show()
		ui.audioRow.Hide()
	case model.FormatAudioOnly:
		ui.resolutionRow.Hide()
		ui.audioRow.Show()
	default:
		ui.resolutionRow.Hide()
		ui.audioRow.Hide()
	}
}

// onBrowse lets the user pick the output directory
func (ui *RootUI) onBrowse() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("Folder dialog failed: %v", err)
			return
		}
		if uri == nil {
			return
		}
		ui.outputEntry.SetText(uri.Path())
	}, ui.window)

	if dir := strings.TrimSpace(ui.outputEntry.Text); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}

	folderDialog.Show()
}

// currentOptions collects the form into DownloadOptions
func (ui *RootUI) currentOptions() model.DownloadOptions {
	opts := model.DownloadOptions{
		URL:             ui.urlEntry.Text,
		OutputDirectory: strings.TrimSpace(ui.outputEntry.Text),
		FormatMode:      model.FormatMode(ui.formatRadio.Selected),
		AudioCodec:      model.AudioCodec(ui.audioSelect.Selected),
		Container:       model.Container(ui.containerSelect.Selected),
	}
	if height, err := model.ParseResolution(ui.resolutionSelect.Selected); err == nil {
		opts.Resolution = height
	}
	return opts
}

// onDownloadClick starts a download job for the current form
func (ui *RootUI) onDownloadClick() {
	if ui.runner.IsRunning() {
		return
	}

	opts := ui.currentOptions()
	if strings.TrimSpace(opts.URL) == "" {
		ui.setStatus(ui.localization.GetText(KeyPleaseEnterURL), true)
		return
	}
	ui.settings.SaveOptions(opts)

	ui.revealBtn.Hide()
	ui.setDownloading(true)
	ui.progressBar.SetValue(0)

	// Start prepares synchronously and reports through onJobUpdate, which
	// must not run on the Fyne thread.
	go func() {
		if _, err := ui.runner.Start(opts); err != nil {
			var running *download.AlreadyRunningError
			if errors.As(err, &running) {
				log.Printf("Download ignored, job %s is still running", running.JobID)
				return
			}
			log.Printf("Download did not start: %v", err)
		}
	}()
}

// onJobUpdate receives runner updates on the runner's goroutine
func (ui *RootUI) onJobUpdate(update model.JobUpdate) {
	// Terminal updates and the final "Processing..." step are never dropped.
	job := update.Job
	if !job.State.IsFinished() && job.StatusText != "" && job.Progress < 1 && !ui.progressGate.Allow() {
		return
	}

	fyne.Do(func() {
		ui.applyJobUpdate(update)
	})
}

// applyJobUpdate renders a job update on the Fyne thread
func (ui *RootUI) applyJobUpdate(update model.JobUpdate) {
	job := update.Job
	l := ui.localization

	ui.setDownloading(job.State.IsActive())

	switch job.State {
	case model.JobStatePreparing:
		ui.progressBar.SetValue(0)
		if job.Warning != "" {
			ui.setStatus(StatusForWarning(l, job.Warning), true)
		}

	case model.JobStateRunning:
		if job.StatusText != "" {
			ui.progressBar.SetValue(job.Progress)
			ui.setStatus(job.StatusText, false)
		} else if job.Warning != "" {
			ui.setStatus(StatusForWarning(l, job.Warning), true)
		} else {
			ui.setStatus(l.GetText(KeyDownloading), false)
		}

	case model.JobStateCompleted:
		ui.progressBar.SetValue(1)
		ui.setStatus(IconDone+" "+l.GetText(KeyDownloadCompleted), false)
		ui.lastOutput = job.OutputPath
		if ui.lastOutput == "" {
			ui.lastOutput = job.OutputDir()
		}
		ui.revealBtn.Show()
		ui.sendCompletionNotification(job)

	case model.JobStateFailed:
		ui.progressBar.SetValue(0)
		err := update.Err
		if err == nil && job.LastError != "" {
			err = errors.New(job.LastError)
		}
		ui.setStatus(StatusForError(l, err), true)
	}
}

// setDownloading toggles the download button between idle and busy
func (ui *RootUI) setDownloading(busy bool) {
	if busy {
		ui.downloadBtn.SetText(ui.localization.GetText(KeyDownloading))
		ui.downloadBtn.Disable()
		return
	}
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.downloadBtn.Enable()
}

// sendCompletionNotification sends a system notification for a finished job
func (ui *RootUI) sendCompletionNotification(job model.Job) {
	content := ui.titleLabel.Text
	if ui.metadata == nil {
		content = job.Options.TrimmedURL()
	}

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyDownloadCompleted),
		Content: content,
	})
}

// onRevealOutput opens the produced file in the system file manager
func (ui *RootUI) onRevealOutput() {
	if ui.lastOutput == "" {
		return
	}

	if err := platform.OpenInFileManager(ui.lastOutput); err != nil {
		log.Printf("Failed to open file manager for %s: %v", ui.lastOutput, err)
		ui.setStatus(ui.localization.Format(KeyErrorOpeningDir, err), true)
	}
}

func formatModeOptions() []string {
	modes := model.FormatModes()
	options := make([]string, 0, len(modes))
	for _, mode := range modes {
		options = append(options, string(mode))
	}
	return options
}

func audioCodecOptions() []string {
	codecs := model.AudioCodecs()
	options := make([]string, 0, len(codecs))
	for _, codec := range codecs {
		options = append(options, string(codec))
	}
	return options
}

func containerOptions() []string {
	containers := model.Containers()
	options := make([]string, 0, len(containers))
	for _, c := range containers {
		options = append(options, string(c))
	}
	return options
}
