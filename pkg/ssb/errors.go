package ssb

import "fmt"

// NotFoundError is returned when a selector cannot be resolved, e.g. when no
// project carries the requested name.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found with name %q", e.Kind, e.Name)
}

// StartFailedError is returned when the start poll exhausts its attempt
// budget without the job reaching RUNNING.
type StartFailedError struct {
	JobID     string
	JobName   string
	LastState JobState
}

func (e *StartFailedError) Error() string {
	return fmt.Sprintf("job %s (job_id=%s) failed to start, last observed state %s", e.JobName, e.JobID, e.LastState)
}
