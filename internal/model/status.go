package model

// JobState represents where a download job is in its lifecycle
type JobState string

const (
	// JobStateIdle means no job has been started
	JobStateIdle JobState = "Idle"

	// JobStatePreparing means options are being validated and the configuration built
	JobStatePreparing JobState = "Preparing"

	// JobStateRunning means the download library is working
	JobStateRunning JobState = "Running"

	// JobStateCompleted means the download finished successfully
	JobStateCompleted JobState = "Completed"

	// JobStateFailed means the job stopped with an error
	JobStateFailed JobState = "Failed"
)

// String returns the string representation of JobState
func (s JobState) String() string {
	return string(s)
}

// IsActive returns true while the job holds the running flag
func (s JobState) IsActive() bool {
	return s == JobStatePreparing || s == JobStateRunning
}

// IsFinished returns true for terminal states
func (s JobState) IsFinished() bool {
	return s == JobStateCompleted || s == JobStateFailed
}
