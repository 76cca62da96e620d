package jobs

import (
	"fmt"
	"time"

	"talentrack/models"
)

// ValidationError reports a missing or malformed required field on a job.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// ValidateJob checks the required content fields and the type enum.
func ValidateJob(job *models.Job) error {
	required := []struct {
		field string
		value string
	}{
		{"title", job.Title},
		{"department", job.Department},
		{"location", job.Location},
		{"description", job.Description},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field}
		}
	}
	if !job.Type.Valid() {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown job type %q", job.Type)}
	}
	return nil
}

// NewPosting finalizes HR input into a storable job: status is forced to
// active and the creation date is stamped.
func NewPosting(job models.Job, now time.Time) (models.Job, error) {
	if err := ValidateJob(&job); err != nil {
		return models.Job{}, err
	}
	job.Status = models.JobActive
	job.CreatedDate = now
	job.ApplicationCount = 0
	return job, nil
}

// SetStatus moves a job among active/paused/closed. There is no transition
// table; any value may follow any other. Applications referencing the job by
// position title are unaffected.
func SetStatus(job *models.Job, newStatus models.JobStatus) error {
	if !newStatus.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown job status %q", newStatus)}
	}
	job.Status = newStatus
	return nil
}

// VisibleOnPublicBoard reports whether a job appears on the applicant-facing
// board. Only active postings are listed; HR's own views show all statuses.
func VisibleOnPublicBoard(job *models.Job) bool {
	return job.Status == models.JobActive
}
