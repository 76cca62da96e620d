package jobs

import (
	"testing"

	"talentrack/models"

	"github.com/stretchr/testify/assert"
)

func sampleJobs() []models.Job {
	return []models.Job{
		{JobID: "j1", Title: "Frontend Developer", Department: "Engineering", Location: "Remote", Type: models.JobFullTime, Status: models.JobActive},
		{JobID: "j2", Title: "Backend Developer", Department: "Engineering", Location: "Berlin", Type: models.JobFullTime, Status: models.JobPaused},
		{JobID: "j3", Title: "Product Designer", Department: "Design", Location: "Remote", Type: models.JobContract, Status: models.JobActive},
		{JobID: "j4", Title: "Engineering Intern", Department: "Engineering", Location: "Berlin", Type: models.JobInternship, Status: models.JobClosed},
	}
}

func jobIDs(list []models.Job) []string {
	out := make([]string, 0, len(list))
	for _, j := range list {
		out = append(out, j.JobID)
	}
	return out
}

func TestFilterJobsIdentity(t *testing.T) {
	jobs := sampleJobs()

	assert.Equal(t, jobs, FilterJobs(jobs, Filter{}))
	assert.Equal(t, jobs, FilterJobs(jobs, Filter{Status: "all", Department: "all", Type: "all"}))
}

func TestFilterJobsByStatus(t *testing.T) {
	got := FilterJobs(sampleJobs(), Filter{Status: "paused"})
	assert.Equal(t, []string{"j2"}, jobIDs(got))
}

func TestFilterJobsSearchSpansFields(t *testing.T) {
	jobs := sampleJobs()

	// title OR department OR location, case-insensitive
	assert.Equal(t, []string{"j1", "j2", "j4"}, jobIDs(FilterJobs(jobs, Filter{Search: "engineering"})))
	assert.Equal(t, []string{"j1", "j3"}, jobIDs(FilterJobs(jobs, Filter{Search: "REMOTE"})))
	assert.Equal(t, []string{"j3"}, jobIDs(FilterJobs(jobs, Filter{Search: "designer"})))
}

func TestFilterJobsExactPredicatesAreANDed(t *testing.T) {
	jobs := sampleJobs()

	got := FilterJobs(jobs, Filter{Department: "Engineering", Type: "full-time"})
	assert.Equal(t, []string{"j1", "j2"}, jobIDs(got))

	got = FilterJobs(jobs, Filter{Department: "Design", Type: "full-time"})
	assert.Empty(t, got)

	got = FilterJobs(jobs, Filter{Status: "active", Department: "Engineering", Search: "remote"})
	assert.Equal(t, []string{"j1"}, jobIDs(got))
}

func TestPublicBoardListsActiveOnly(t *testing.T) {
	got := PublicBoard(sampleJobs())
	assert.Equal(t, []string{"j1", "j3"}, jobIDs(got))
}

func TestDepartmentsDistinctFirstSeen(t *testing.T) {
	got := Departments(sampleJobs())
	assert.Equal(t, []string{"Engineering", "Design"}, got)
}

func TestDepartmentsEmpty(t *testing.T) {
	assert.Empty(t, Departments(nil))
}
