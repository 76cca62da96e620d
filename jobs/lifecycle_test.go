package jobs

import (
	"testing"
	"time"

	"talentrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJob() models.Job {
	return models.Job{
		Title:       "Frontend Developer",
		Department:  "Engineering",
		Location:    "Remote",
		Type:        models.JobFullTime,
		Description: "Build the applicant-facing board.",
	}
}

func TestNewPostingStartsActive(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	input := validJob()
	input.Status = models.JobClosed // client-sent status is ignored
	input.ApplicationCount = 42

	job, err := NewPosting(input, now)
	require.NoError(t, err)

	assert.Equal(t, models.JobActive, job.Status)
	assert.Equal(t, now, job.CreatedDate)
	assert.Zero(t, job.ApplicationCount)
}

func TestNewPostingRequiredFields(t *testing.T) {
	cases := []struct {
		field string
		mut   func(*models.Job)
	}{
		{"title", func(j *models.Job) { j.Title = "" }},
		{"department", func(j *models.Job) { j.Department = "" }},
		{"location", func(j *models.Job) { j.Location = "" }},
		{"description", func(j *models.Job) { j.Description = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			input := validJob()
			tc.mut(&input)

			_, err := NewPosting(input, time.Now())
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestNewPostingRejectsUnknownType(t *testing.T) {
	input := validJob()
	input.Type = "gig"

	_, err := NewPosting(input, time.Now())
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)
}

func TestSetStatusAnyOrder(t *testing.T) {
	job := validJob()
	job.Status = models.JobActive

	for _, s := range []models.JobStatus{models.JobClosed, models.JobActive, models.JobPaused, models.JobActive} {
		require.NoError(t, SetStatus(&job, s))
		assert.Equal(t, s, job.Status)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	job := validJob()
	job.Status = models.JobActive

	err := SetStatus(&job, "archived")
	require.Error(t, err)
	assert.Equal(t, models.JobActive, job.Status)
}

func TestVisibleOnPublicBoard(t *testing.T) {
	job := validJob()

	job.Status = models.JobActive
	assert.True(t, VisibleOnPublicBoard(&job))

	job.Status = models.JobPaused
	assert.False(t, VisibleOnPublicBoard(&job))

	job.Status = models.JobClosed
	assert.False(t, VisibleOnPublicBoard(&job))
}
