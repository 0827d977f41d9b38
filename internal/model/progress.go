package model

// ProgressPhase is the stage a progress event reports on.
type ProgressPhase string

const (
	PhaseDownloading ProgressPhase = "downloading"
	PhaseFinished    ProgressPhase = "finished"
)

// ProgressEvent is a raw progress report from the download library.
// Zero values mean "unknown".
type ProgressEvent struct {
	Phase              ProgressPhase
	DownloadedBytes    int64
	TotalBytes         int64   // exact total
	TotalBytesEstimate int64   // used when TotalBytes is unknown
	SpeedBytesPerSec   float64 // bytes per second
	ETASeconds         int
}
