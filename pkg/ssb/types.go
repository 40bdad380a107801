package ssb

// JobState is the lifecycle state reported by the API. Only STOPPED and
// RUNNING drive decisions in this client; every other state is reported and
// skipped.
type JobState string

const (
	JobStateCreated      JobState = "CREATED"
	JobStateInitializing JobState = "INITIALIZING"
	JobStateStopped      JobState = "STOPPED"
	JobStateRunning      JobState = "RUNNING"
	JobStateFailed       JobState = "FAILED"
)

const (
	ExecutionModePerJob  = "PER_JOB"
	ExecutionModeSession = "SESSION"
	RuntimeModeStreaming = "STREAMING"
	RuntimeModeBatch     = "BATCH"
)

type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Job is a transient snapshot of a server-owned job record. The config
// blocks are opaque to this client; their schema belongs to the server, so
// they are kept as generic maps and copied wholesale into request payloads.
type Job struct {
	JobID            string         `json:"job_id"`
	ProjectID        string         `json:"project_id"`
	Name             string         `json:"name"`
	State            JobState       `json:"state"`
	SQL              string         `json:"sql"`
	MvEndpoints      []any          `json:"mv_endpoints"`
	MvConfig         map[string]any `json:"mv_config"`
	AutoscalerConfig map[string]any `json:"autoscaler_config"`
	CheckpointConfig map[string]any `json:"checkpoint_config"`
	KubernetesConfig map[string]any `json:"kubernetes_config"`
	RuntimeConfig    map[string]any `json:"runtime_config"`
	FlinkJobID       string         `json:"flink_job_id"`
	SampleID         string         `json:"sample_id"`
}

// StartWithSavepoint reports whether the job is configured to resume from a
// savepoint on start.
func (j *Job) StartWithSavepoint() bool {
	v, _ := j.RuntimeConfig["start_with_savepoint"].(bool)
	return v
}

// Selector identifies the jobs an operation acts on. Exactly one of
// ProjectID and ProjectName must be set; when AllJobs is true, JobIDs and
// JobNames are ignored. The CLI layer validates this before calling in.
type Selector struct {
	ProjectID   string
	ProjectName string
	JobIDs      []string
	JobNames    []string
	AllJobs     bool
}

// Overrides are the caller-supplied changes merged into a job's current
// configuration when building an update payload. UseSavepoint is tri-state:
// nil leaves the job's start_with_savepoint setting untouched. PerJob/Session
// and Batch/Streaming are mutually exclusive; the CLI layer enforces this.
type Overrides struct {
	SQL          string
	UseSavepoint *bool
	PerJob       bool
	Session      bool
	Batch        bool
	Streaming    bool
}

// JobStateInfo is the projection returned by ListJobsState.
type JobStateInfo struct {
	JobID   string   `json:"job_id"`
	JobName string   `json:"job_name"`
	State   JobState `json:"state"`
}
