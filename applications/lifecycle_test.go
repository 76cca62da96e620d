package applications

import (
	"testing"
	"time"

	"talentrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() models.Application {
	return models.Application{
		FirstName:  "Sarah",
		LastName:   "Johnson",
		Email:      "sarah@x.com",
		Phone:      "555-1234",
		Experience: "3 years",
		Education:  "BSc CS",
		Position:   "Frontend Developer",
	}
}

func TestNewSubmissionStartsPending(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	app, err := NewSubmission(validInput(), now)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, now, app.AppliedDate)
	assert.Empty(t, app.StatusHistory)
	assert.Empty(t, app.Notes)
}

func TestNewSubmissionRequiredFields(t *testing.T) {
	cases := []struct {
		field string
		mut   func(*models.Application)
	}{
		{"firstName", func(a *models.Application) { a.FirstName = "" }},
		{"lastName", func(a *models.Application) { a.LastName = "" }},
		{"email", func(a *models.Application) { a.Email = "" }},
		{"phone", func(a *models.Application) { a.Phone = "" }},
		{"experience", func(a *models.Application) { a.Experience = "" }},
		{"education", func(a *models.Application) { a.Education = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			input := validInput()
			tc.mut(&input)

			_, err := NewSubmission(input, time.Now())
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestNewSubmissionOptionalFieldsAreOptional(t *testing.T) {
	input := validInput()
	input.Skills = nil
	input.ExpectedSalary = ""
	input.CoverLetter = ""

	_, err := NewSubmission(input, time.Now())
	assert.NoError(t, err)
}

func TestChangeStatusAppendsOneEntryPerCall(t *testing.T) {
	permissive := TransitionPolicy{}
	now := time.Now()

	for _, from := range models.ApplicationStatuses {
		for _, to := range models.ApplicationStatuses {
			app, err := NewSubmission(validInput(), now)
			require.NoError(t, err)
			app.Status = from

			entry, err := ChangeStatus(&app, to, "HR Manager", "", now, permissive)
			require.NoError(t, err, "%s -> %s must be legal under the permissive policy", from, to)

			assert.Equal(t, to, app.Status)
			assert.Len(t, app.StatusHistory, 1)
			assert.Equal(t, entry, app.StatusHistory[0])
		}
	}
}

func TestChangeStatusSelfTransitionStillAppends(t *testing.T) {
	app, err := NewSubmission(validInput(), time.Now())
	require.NoError(t, err)

	_, err = ChangeStatus(&app, models.StatusPending, "HR Manager", "", time.Now(), TransitionPolicy{})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, app.Status)
	assert.Len(t, app.StatusHistory, 1)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	app, _ := NewSubmission(validInput(), time.Now())

	_, err := ChangeStatus(&app, "archived", "HR Manager", "", time.Now(), TransitionPolicy{})
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Empty(t, app.StatusHistory)
}

func TestChangeStatusHiredIsNotTerminal(t *testing.T) {
	// A small HR team correcting mistakes can move a record out of hired or
	// rejected; the audit trail keeps both moves.
	now := time.Now()
	app, err := NewSubmission(validInput(), now)
	require.NoError(t, err)

	_, err = ChangeStatus(&app, models.StatusHired, "HR Manager", "Great fit", now, TransitionPolicy{})
	require.NoError(t, err)

	_, err = ChangeStatus(&app, models.StatusRejected, "HR Manager", "", now.Add(time.Minute), TransitionPolicy{})
	require.NoError(t, err)

	assert.Equal(t, models.StatusRejected, app.Status)
	require.Len(t, app.StatusHistory, 2)
	assert.Equal(t, "Great fit", app.StatusHistory[0].Notes)
	assert.Empty(t, app.StatusHistory[1].Notes)
	assert.Equal(t, "Great fit", app.Notes, "empty notes on the second change must not erase the annotation")
}

func TestChangeStatusStrictPolicy(t *testing.T) {
	strict := TransitionPolicy{Strict: true}

	allowed := []struct {
		from, to models.ApplicationStatus
	}{
		{models.StatusPending, models.StatusReviewed},
		{models.StatusPending, models.StatusRejected},
		{models.StatusReviewed, models.StatusInterviewed},
		{models.StatusReviewed, models.StatusRejected},
		{models.StatusInterviewed, models.StatusHired},
		{models.StatusInterviewed, models.StatusRejected},
	}
	for _, tc := range allowed {
		assert.True(t, strict.Allowed(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct {
		from, to models.ApplicationStatus
	}{
		{models.StatusPending, models.StatusPending},
		{models.StatusPending, models.StatusHired},
		{models.StatusHired, models.StatusRejected},
		{models.StatusRejected, models.StatusPending},
		{models.StatusInterviewed, models.StatusReviewed},
	}
	for _, tc := range denied {
		assert.False(t, strict.Allowed(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestRecordUploadOutcomeSuccess(t *testing.T) {
	now := time.Now()
	docs := models.Documents{
		Resume: &models.Document{Name: "cv.pdf", Status: models.UploadPending},
	}

	err := RecordUploadOutcome(&docs, models.SlotResume, "/static/uploads/applications/resume/u1/cv.pdf", now)
	require.NoError(t, err)

	assert.Equal(t, models.UploadDone, docs.Resume.Status)
	assert.Equal(t, "/static/uploads/applications/resume/u1/cv.pdf", docs.Resume.URL)
	assert.Equal(t, now, docs.Resume.UploadedAt)
}

func TestRecordUploadOutcomeFailure(t *testing.T) {
	docs := models.Documents{
		Resume: &models.Document{Name: "huge.pdf", Status: models.UploadPending},
	}

	err := RecordUploadOutcome(&docs, models.SlotResume, "", time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.UploadFailed, docs.Resume.Status)
	assert.Empty(t, docs.Resume.URL, "a failed slot must not carry a url")
}

func TestRecordUploadOutcomeLeavesOtherSlotsAlone(t *testing.T) {
	now := time.Now()
	app, err := NewSubmission(validInput(), now)
	require.NoError(t, err)
	app.Documents = models.Documents{
		Resume:      &models.Document{Name: "cv.pdf", Status: models.UploadPending},
		CoverLetter: &models.Document{Name: "letter.pdf", Status: models.UploadDone, URL: "/x/letter.pdf"},
	}

	before := app.Status
	err = RecordUploadOutcome(&app.Documents, models.SlotResume, "", now)
	require.NoError(t, err)

	assert.Equal(t, before, app.Status)
	assert.Empty(t, app.StatusHistory)
	assert.Equal(t, models.UploadDone, app.Documents.CoverLetter.Status)
	assert.Equal(t, "/x/letter.pdf", app.Documents.CoverLetter.URL)
	assert.Nil(t, app.Documents.Portfolio)
}

func TestRecordUploadOutcomeUnknownSlot(t *testing.T) {
	var docs models.Documents
	err := RecordUploadOutcome(&docs, "transcript", "/x", time.Now())
	assert.Error(t, err)
}

func TestRecordUploadOutcomeFillsEmptySlot(t *testing.T) {
	var docs models.Documents
	err := RecordUploadOutcome(&docs, models.SlotPortfolio, "/x/portfolio.pdf", time.Now())
	require.NoError(t, err)

	require.NotNil(t, docs.Portfolio)
	assert.Equal(t, models.UploadDone, docs.Portfolio.Status)
}
