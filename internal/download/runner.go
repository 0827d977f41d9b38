package download

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ytget/simple-downloader/internal/model"
	"github.com/ytget/simple-downloader/internal/platform"
	"github.com/ytget/simple-downloader/internal/progress"
)

// Runner constants
const (
	JobIDPrefix         = "job-"
	ProgressLogInterval = 5 * time.Second
)

// Runner executes at most one download job at a time.
type Runner struct {
	extractor Extractor
	tools     TranscoderDetector

	// running is the JobState flag; it is taken by compare-and-swap before
	// any work starts and released when the job reaches a terminal state.
	running atomic.Bool

	jobMutex sync.Mutex
	job      *model.Job
	onUpdate func(model.JobUpdate) // callback for UI updates
}

// NewRunner creates a new job runner
func NewRunner(extractor Extractor, tools TranscoderDetector) *Runner {
	return &Runner{
		extractor: extractor,
		tools:     tools,
	}
}

// SetUpdateCallback sets the callback function for job updates. The callback
// runs on the runner's goroutines and must marshal UI work itself.
func (r *Runner) SetUpdateCallback(callback func(model.JobUpdate)) {
	r.jobMutex.Lock()
	r.onUpdate = callback
	r.jobMutex.Unlock()
}

// IsRunning reports whether a job holds the running flag.
func (r *Runner) IsRunning() bool {
	return r.running.Load()
}

// Current returns a snapshot of the most recent job. Before the first Start
// it reports an Idle job and false.
func (r *Runner) Current() (model.Job, bool) {
	r.jobMutex.Lock()
	defer r.jobMutex.Unlock()
	if r.job == nil {
		return model.Job{State: model.JobStateIdle}, false
	}
	return *r.job, true
}

// Start validates opts, prepares the output directory and the library
// configuration, then runs the download in the background. It returns
// AlreadyRunningError without side effects if a job is in flight. Errors
// found while preparing are returned and also published as a Failed update.
func (r *Runner) Start(opts model.DownloadOptions) (*model.Job, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, &AlreadyRunningError{JobID: r.currentID()}
	}

	job := &model.Job{
		ID:        generateJobID(),
		Options:   opts,
		State:     model.JobStatePreparing,
		StartedAt: time.Now(),
	}
	r.jobMutex.Lock()
	r.job = job
	r.jobMutex.Unlock()
	r.notifyUpdate(r.mutate(job, nil), nil)

	cfg, err := r.prepare(job)
	if err != nil {
		snapshot := r.fail(job, err)
		return &snapshot, err
	}

	snapshot := r.mutate(job, func(j *model.Job) {
		j.State = model.JobStateRunning
	})
	r.notifyUpdate(snapshot, nil)
	log.Printf("Job %s started for %s (%s)", job.ID, snapshot.Options.URL, snapshot.Options.FormatMode)

	go r.run(job, cfg)

	return &snapshot, nil
}

// prepare covers the Preparing state and returns the library configuration.
func (r *Runner) prepare(job *model.Job) (Config, error) {
	opts := job.Options
	url := opts.TrimmedURL()
	if url == "" {
		return Config{}, &ValidationError{Field: "url", Reason: "empty"}
	}
	opts.URL = url

	if err := opts.Validate(); err != nil {
		return Config{}, &ValidationError{Field: "options", Reason: err.Error()}
	}

	if err := platform.CreateDirectoryIfNotExists(opts.OutputDirectory); err != nil {
		return Config{}, &IOError{Path: opts.OutputDirectory, Err: err}
	}

	cfg, warnings, err := BuildConfig(opts, r.tools.HasFFmpeg())
	if err != nil {
		return Config{}, err
	}

	for _, w := range warnings {
		log.Printf("Job %s warning: %s", job.ID, w)
		warning := w
		r.notifyUpdate(r.mutate(job, func(j *model.Job) {
			j.Warning = warning
		}), nil)
	}

	cfg.ProgressHooks = append(cfg.ProgressHooks, r.progressHook(job))

	r.mutate(job, func(j *model.Job) {
		j.Options = opts
	})
	return cfg, nil
}

// run covers the Running state and always ends in Completed or Failed.
func (r *Runner) run(job *model.Job, cfg Config) {
	var (
		result *Result
		err    error
	)

	func() {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("download panicked: %v", p)
			}
		}()
		result, err = r.extractor.Download(context.Background(), job.Options.URL, cfg)
	}()

	if err != nil {
		log.Printf("Job %s failed: %v", job.ID, err)
		r.fail(job, &DownloadError{Err: err})
		return
	}

	outputPath := r.outputPath(job.Options, cfg, result)
	snapshot := r.mutate(job, func(j *model.Job) {
		j.State = model.JobStateCompleted
		j.Progress = 1.0
		j.OutputPath = outputPath
		j.FinishedAt = time.Now()
	})
	log.Printf("Job %s completed in %s", job.ID, snapshot.Elapsed().Round(time.Second))
	r.notifyUpdate(snapshot, nil)
	r.running.Store(false)
}

// fail moves job to Failed, publishes the error and then releases the
// running flag, so the terminal update always precedes the next job's updates.
func (r *Runner) fail(job *model.Job, err error) model.Job {
	snapshot := r.mutate(job, func(j *model.Job) {
		j.State = model.JobStateFailed
		j.LastError = err.Error()
		j.FinishedAt = time.Now()
	})
	r.notifyUpdate(snapshot, err)
	r.running.Store(false)
	return snapshot
}

// progressHook renders library events onto the job.
func (r *Runner) progressHook(job *model.Job) ProgressHook {
	logGate := &rate.Sometimes{First: 1, Interval: ProgressLogInterval}
	return func(ev model.ProgressEvent) {
		status := progress.Render(ev)
		snapshot := r.mutate(job, func(j *model.Job) {
			j.Progress = status.Fraction
			j.StatusText = status.Text
		})
		logGate.Do(func() {
			log.Printf("Job %s: %d%% %s", job.ID, snapshot.Percent(), status.Text)
		})
		r.notifyUpdate(snapshot, nil)
	}
}

// outputPath picks the produced file: the library's own report when present,
// else the output template expanded with what the library returned.
func (r *Runner) outputPath(opts model.DownloadOptions, cfg Config, result *Result) string {
	if result == nil {
		return ""
	}
	if result.Filename != "" {
		return result.Filename
	}
	if result.ID == "" || result.Title == "" {
		return ""
	}
	ext := result.Ext
	if ext == "" {
		ext = expectedExt(opts)
	}
	return ExpandOutputTemplate(cfg.OutputTemplate, map[string]string{
		"title": result.Title,
		"id":    result.ID,
		"ext":   ext,
	})
}

// mutate applies fn to job under the lock and returns a copy.
func (r *Runner) mutate(job *model.Job, fn func(*model.Job)) model.Job {
	r.jobMutex.Lock()
	defer r.jobMutex.Unlock()
	if fn != nil {
		fn(job)
	}
	return *job
}

func (r *Runner) currentID() string {
	r.jobMutex.Lock()
	defer r.jobMutex.Unlock()
	if r.job == nil {
		return ""
	}
	return r.job.ID
}

// notifyUpdate calls the update callback if set
func (r *Runner) notifyUpdate(job model.Job, err error) {
	r.jobMutex.Lock()
	callback := r.onUpdate
	r.jobMutex.Unlock()

	if callback != nil {
		callback(model.JobUpdate{Job: job, Err: err})
	}
}

// generateJobID generates a unique, time-ordered job ID using UUID v7
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
