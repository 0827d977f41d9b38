package model

import (
	"path/filepath"
	"time"
)

// Job is a snapshot of the single download job.
type Job struct {
	ID         string
	Options    DownloadOptions
	State      JobState
	Progress   float64 // 0.0 to 1.0
	StatusText string
	Warning    string // non-fatal warning raised while preparing
	LastError  string // error message if the job failed
	OutputPath string // produced file, if known
	StartedAt  time.Time
	FinishedAt time.Time
}

// JobUpdate is published by the runner every time the job changes.
type JobUpdate struct {
	Job Job
	Err error // set when State is Failed
}

// Percent returns progress as a whole percentage.
func (j *Job) Percent() int {
	return int(j.Progress * 100)
}

// OutputDir returns the directory the job writes to, preferring the
// directory of the produced file when it is known.
func (j *Job) OutputDir() string {
	if j.OutputPath != "" {
		return filepath.Dir(j.OutputPath)
	}
	return j.Options.OutputDirectory
}

// Elapsed returns how long the job ran, or has been running so far.
func (j *Job) Elapsed() time.Duration {
	if j.StartedAt.IsZero() {
		return 0
	}
	if j.FinishedAt.IsZero() {
		return time.Since(j.StartedAt)
	}
	return j.FinishedAt.Sub(j.StartedAt)
}
