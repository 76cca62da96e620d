package applications

import (
	"errors"
	"fmt"
	"os"
	"time"

	"talentrack/models"
)

// ValidationError reports a missing or malformed required field on a
// submission. It is surfaced to the form, not fatal.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

var ErrIllegalTransition = errors.New("illegal status transition")

// TransitionPolicy controls which status changes are accepted. The default
// (permissive) policy allows any of the five statuses to move to any other,
// including re-setting the current status; a history entry is appended either
// way. Strict mode enforces the pipeline order and makes hired/rejected
// terminal.
type TransitionPolicy struct {
	Strict bool
}

// PolicyFromEnv reads STRICT_TRANSITIONS. Permissive unless set to "true".
func PolicyFromEnv() TransitionPolicy {
	return TransitionPolicy{Strict: os.Getenv("STRICT_TRANSITIONS") == "true"}
}

var strictNext = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.StatusPending:     {models.StatusReviewed, models.StatusRejected},
	models.StatusReviewed:    {models.StatusInterviewed, models.StatusRejected},
	models.StatusInterviewed: {models.StatusHired, models.StatusRejected},
	models.StatusHired:       {},
	models.StatusRejected:    {},
}

// Allowed reports whether a change from one status to another is legal under
// this policy. Both statuses must be valid enum values regardless of mode.
func (p TransitionPolicy) Allowed(from, to models.ApplicationStatus) bool {
	if !to.Valid() {
		return false
	}
	if !p.Strict {
		return true
	}
	for _, next := range strictNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateSubmission checks the required applicant identity fields.
func ValidateSubmission(app *models.Application) error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", app.FirstName},
		{"lastName", app.LastName},
		{"email", app.Email},
		{"phone", app.Phone},
		{"experience", app.Experience},
		{"education", app.Education},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field}
		}
	}
	return nil
}

// NewSubmission finalizes an applicant's input into a storable record:
// status is forced to pending, the applied date is stamped, and the history
// starts empty. Document slots arrive already populated by the caller (either
// pending_upload or with an upload outcome recorded).
func NewSubmission(app models.Application, now time.Time) (models.Application, error) {
	if err := ValidateSubmission(&app); err != nil {
		return models.Application{}, err
	}
	app.Status = models.StatusPending
	app.AppliedDate = now
	app.StatusHistory = nil
	app.Notes = ""
	return app, nil
}

// ChangeStatus applies an HR status update in place: exactly one history
// entry is appended and the current status is overwritten. Notes, when given,
// replace the application's latest annotation. The returned entry is what the
// caller persists with an atomic $push.
func ChangeStatus(app *models.Application, newStatus models.ApplicationStatus, changedBy, notes string, now time.Time, policy TransitionPolicy) (models.StatusChange, error) {
	if !newStatus.Valid() {
		return models.StatusChange{}, fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, newStatus)
	}
	if !policy.Allowed(app.Status, newStatus) {
		return models.StatusChange{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, app.Status, newStatus)
	}

	entry := models.StatusChange{
		Status:    newStatus,
		ChangedAt: now,
		ChangedBy: changedBy,
		Notes:     notes,
	}
	app.StatusHistory = append(app.StatusHistory, entry)
	app.Status = newStatus
	if notes != "" {
		app.Notes = notes
	}
	return entry, nil
}

// RecordUploadOutcome updates a single document slot after a storage attempt.
// An empty url marks the slot failed; otherwise the slot becomes uploaded and
// keeps the retrievable url. The application's status, history, and the other
// slots are never touched.
func RecordUploadOutcome(docs *models.Documents, slot models.DocumentSlot, url string, at time.Time) error {
	if !slot.Valid() {
		return fmt.Errorf("unknown document slot %q", slot)
	}
	doc := docs.Get(slot)
	if doc == nil {
		doc = &models.Document{}
		docs.Set(slot, doc)
	}
	if url == "" {
		doc.Status = models.UploadFailed
		doc.URL = ""
		return nil
	}
	doc.Status = models.UploadDone
	doc.URL = url
	doc.UploadedAt = at
	return nil
}
