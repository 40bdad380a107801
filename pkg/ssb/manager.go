package ssb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aaraujo/ssbctl/pkg/cli"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Start-poll tuning. The execute endpoint answers 500 when a job takes
// longer to start than the API's own timeout; in that case the job is
// re-fetched once per interval until it reaches RUNNING or the attempt
// budget runs out. Every attempt consumes budget, so the wall-clock wait is
// bounded even while the job sits in INITIALIZING.
var (
	StartPollAttempts = 120
	StartPollInterval = time.Second
)

// Manager drives the job lifecycle operations against one API client. Jobs
// are re-fetched at the start of every operation and never cached across
// operations. All multi-job operations run strictly sequentially.
type Manager struct {
	api *cli.APIClient
}

func NewManager(api *cli.APIClient) *Manager {
	return &Manager{api: api}
}

// ActionOutcome describes what a batch operation did with one job.
type ActionOutcome string

const (
	OutcomeSkipped ActionOutcome = "skipped"
	OutcomeUpdated ActionOutcome = "updated"
	OutcomeStopped ActionOutcome = "stopped"
	OutcomeStarted ActionOutcome = "started"
)

// ActionResult is the per-job record returned by the mutating operations.
// Skips carry the state that caused them; stop and start carry the raw API
// response body.
type ActionResult struct {
	JobID    string          `json:"job_id"`
	JobName  string          `json:"job_name"`
	Outcome  ActionOutcome   `json:"outcome"`
	State    JobState        `json:"state,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
}

// StartSummary is emitted when a start had to be confirmed by polling.
type StartSummary struct {
	Responses []StartResponse `json:"responses"`
}

type StartResponse struct {
	Type       string `json:"type"`
	SsbJobID   string `json:"ssb_job_id"`
	JobName    string `json:"job_name"`
	FlinkJobID string `json:"flink_job_id"`
	SampleID   string `json:"sample_id"`
}

func (m *Manager) ListProjects() ([]Project, error) {
	var projects []Project
	if err := m.api.Get("/api/v2/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// resolveProject turns the selector's project identifier into a project id.
// A project name resolves to the first project carrying that name.
func (m *Manager) resolveProject(sel Selector) (string, error) {
	if sel.ProjectName == "" {
		return sel.ProjectID, nil
	}

	projects, err := m.ListProjects()
	if err != nil {
		return "", err
	}
	for _, p := range projects {
		if p.Name == sel.ProjectName {
			return p.ID, nil
		}
	}
	return "", &NotFoundError{Kind: "project", Name: sel.ProjectName}
}

// ListJobs fetches the jobs of the selected project and filters them. With
// AllJobs set, or with neither job ids nor job names supplied, the full job
// list is returned. Otherwise a job is selected when its id is in JobIDs or
// its name is in JobNames.
func (m *Manager) ListJobs(sel Selector) ([]Job, error) {
	projectID, err := m.resolveProject(sel)
	if err != nil {
		return nil, err
	}

	var listing struct {
		Jobs []Job `json:"jobs"`
	}
	if err := m.api.Get(fmt.Sprintf("/api/v2/projects/%s/jobs", projectID), &listing); err != nil {
		return nil, err
	}

	return filterJobs(listing.Jobs, sel), nil
}

func filterJobs(jobs []Job, sel Selector) []Job {
	if sel.AllJobs || (len(sel.JobIDs) == 0 && len(sel.JobNames) == 0) {
		return jobs
	}

	ids := make(map[string]struct{}, len(sel.JobIDs))
	for _, id := range sel.JobIDs {
		ids[id] = struct{}{}
	}
	names := make(map[string]struct{}, len(sel.JobNames))
	for _, name := range sel.JobNames {
		names[name] = struct{}{}
	}

	selected := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if _, ok := ids[j.JobID]; ok {
			selected = append(selected, j)
			continue
		}
		if _, ok := names[j.Name]; ok {
			selected = append(selected, j)
		}
	}
	return selected
}

// ListJobsState projects id, name and state of the selected jobs.
func (m *Manager) ListJobsState(sel Selector) ([]JobStateInfo, error) {
	jobs, err := m.ListJobs(sel)
	if err != nil {
		return nil, err
	}

	states := make([]JobStateInfo, len(jobs))
	for i, j := range jobs {
		states[i] = JobStateInfo{JobID: j.JobID, JobName: j.Name, State: j.State}
	}
	return states, nil
}

// UpdateJobs applies the overrides to every selected job that is STOPPED.
// Jobs in any other state are reported and skipped; updating a running job
// is unsafe. The first API error aborts the batch, leaving earlier jobs
// updated.
func (m *Manager) UpdateJobs(sel Selector, ov Overrides) ([]ActionResult, error) {
	jobs, err := m.ListJobs(sel)
	if err != nil {
		return nil, err
	}

	results := make([]ActionResult, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]

		if job.State != JobStateStopped {
			log.Infof("job %s (job_id=%s) is already in state %s", job.Name, job.JobID, job.State)
			results = append(results, ActionResult{JobID: job.JobID, JobName: job.Name, Outcome: OutcomeSkipped, State: job.State})
			continue
		}

		log.Infof("updating job %s (job_id=%s)", job.Name, job.JobID)
		if err := m.updateJob(job, ov); err != nil {
			return results, err
		}
		results = append(results, ActionResult{JobID: job.JobID, JobName: job.Name, Outcome: OutcomeUpdated})
	}
	return results, nil
}

func (m *Manager) updateJob(job *Job, ov Overrides) error {
	path := fmt.Sprintf("/api/v2/projects/%s/jobs/%s", job.ProjectID, job.JobID)
	_, err := m.api.Put(path, UpdatePayload(job, ov))
	return err
}

// StopJobs stops every selected job that is not already STOPPED.
func (m *Manager) StopJobs(sel Selector, savepoint bool) ([]ActionResult, error) {
	jobs, err := m.ListJobs(sel)
	if err != nil {
		return nil, err
	}

	results := make([]ActionResult, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]

		if job.State == JobStateStopped {
			log.Infof("job %s (job_id=%s) is already in state %s", job.Name, job.JobID, job.State)
			results = append(results, ActionResult{JobID: job.JobID, JobName: job.Name, Outcome: OutcomeSkipped, State: job.State})
			continue
		}

		log.Infof("stopping job %s (job_id=%s)", job.Name, job.JobID)
		path := fmt.Sprintf("/api/v2/projects/%s/jobs/%s/stop", job.ProjectID, job.JobID)
		resp, err := m.api.Post(path, StopPayload(job, savepoint))
		if err != nil {
			return results, err
		}
		results = append(results, ActionResult{JobID: job.JobID, JobName: job.Name, Outcome: OutcomeStopped, Response: resp.Body})
	}
	return results, nil
}

// StartJobs updates and then starts every selected job that is STOPPED, so
// start-time overrides take effect before execution. The execute call also
// accepts a 500, which the API answers when the job is slow to start; the
// job is then polled until it reaches RUNNING.
func (m *Manager) StartJobs(sel Selector, ov Overrides) ([]ActionResult, error) {
	jobs, err := m.ListJobs(sel)
	if err != nil {
		return nil, err
	}

	results := make([]ActionResult, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]

		if job.State != JobStateStopped {
			log.Infof("job %s (job_id=%s) is already in state %s", job.Name, job.JobID, job.State)
			results = append(results, ActionResult{JobID: job.JobID, JobName: job.Name, Outcome: OutcomeSkipped, State: job.State})
			continue
		}

		log.Infof("starting job %s (job_id=%s)", job.Name, job.JobID)
		if err := m.updateJob(job, ov); err != nil {
			return results, err
		}

		path := fmt.Sprintf("/api/v2/projects/%s/jobs/%s/execute", job.ProjectID, job.JobID)
		resp, err := m.api.Post(path, nil, http.StatusOK, http.StatusInternalServerError)
		if err != nil {
			return results, err
		}

		if resp.StatusCode == http.StatusOK {
			results = append(results, ActionResult{JobID: job.JobID, JobName: job.Name, Outcome: OutcomeStarted, Response: resp.Body})
			continue
		}

		started, err := m.waitForStart(job.ProjectID, job.JobID)
		if err != nil {
			return results, err
		}

		summary, err := json.Marshal(StartSummary{
			Responses: []StartResponse{{
				Type:       "job",
				SsbJobID:   started.JobID,
				JobName:    started.Name,
				FlinkJobID: started.FlinkJobID,
				SampleID:   started.SampleID,
			}},
		})
		if err != nil {
			return results, errors.Wrapf(err, "failed to encode start summary for job %s", started.JobID)
		}
		results = append(results, ActionResult{JobID: started.JobID, JobName: started.Name, Outcome: OutcomeStarted, Response: summary})
	}
	return results, nil
}

// waitForStart re-fetches the job once per interval until it leaves the
// STOPPED/INITIALIZING states or the attempt budget is exhausted. Only a
// final state of RUNNING counts as a successful start.
func (m *Manager) waitForStart(projectID, jobID string) (*Job, error) {
	var job *Job
	state := JobStateStopped

	for attempts := StartPollAttempts; attempts > 0; attempts-- {
		jobs, err := m.ListJobs(Selector{ProjectID: projectID, JobIDs: []string{jobID}})
		if err != nil {
			return nil, err
		}
		if len(jobs) == 0 {
			return nil, errors.Errorf("job %s disappeared from project %s while waiting for it to start", jobID, projectID)
		}

		job = &jobs[0]
		state = job.State
		log.Debugf("job %s (job_id=%s) is in state %s", job.Name, job.JobID, state)

		if state != JobStateStopped && state != JobStateInitializing {
			break
		}

		time.Sleep(StartPollInterval)
	}

	if state != JobStateRunning {
		return nil, &StartFailedError{JobID: jobID, JobName: job.Name, LastState: state}
	}
	return job, nil
}
