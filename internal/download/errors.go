package download

import "fmt"

// ValidationError reports bad user input, detected before any network access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FetchError wraps a failed metadata probe.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IOError reports a filesystem failure, such as an output directory that
// cannot be created.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// MissingDependencyError reports that a required external tool is absent.
type MissingDependencyError struct {
	Tool    string
	Purpose string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s required for %s", e.Tool, e.Purpose)
}

// DownloadError wraps a failure of the download call; its message is the
// library's message unchanged.
type DownloadError struct {
	Err error
}

func (e *DownloadError) Error() string {
	return e.Err.Error()
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// AlreadyRunningError is returned when Start is called while a job is active.
type AlreadyRunningError struct {
	JobID string
}

func (e *AlreadyRunningError) Error() string {
	return fmt.Sprintf("download already running: %s", e.JobID)
}
