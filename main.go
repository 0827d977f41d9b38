package main

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/simple-downloader/internal/config"
	"github.com/ytget/simple-downloader/internal/download"
	"github.com/ytget/simple-downloader/internal/platform"
	"github.com/ytget/simple-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.simple-downloader"
)

func main() {
	log.Printf("Simple Downloader v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewMonoTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		log.Printf("failed to ensure downloads dir: %v", err)
	}

	// The yt-dlp binary is fetched lazily; a failure here surfaces again on
	// the first fetch or download.
	go func() {
		if err := download.EnsureInstalled(context.Background()); err != nil {
			log.Printf("yt-dlp install failed: %v", err)
		}
	}()

	extractor := download.NewYTDLP()
	fetcher := download.NewFetcher(extractor)
	runner := download.NewRunner(extractor, platform.NewToolLocator())

	ui.NewRootUI(myWindow, myApp, fetcher, runner, platform.NewThumbnailLoader())

	myWindow.ShowAndRun()
}
