package applications

import (
	"testing"

	"talentrack/models"

	"github.com/stretchr/testify/assert"
)

func sampleApplications() []models.Application {
	return []models.Application{
		{ApplicationID: "a1", FirstName: "Sarah", LastName: "Johnson", Email: "sarah.j@email.com", Position: "Frontend Developer", Status: models.StatusPending},
		{ApplicationID: "a2", FirstName: "Mike", LastName: "Chen", Email: "mike.chen@email.com", Position: "Backend Developer", Status: models.StatusReviewed},
		{ApplicationID: "a3", FirstName: "Priya", LastName: "Patel", Email: "priya@email.com", Position: "Frontend Developer", Status: models.StatusInterviewed},
		{ApplicationID: "a4", FirstName: "Tom", LastName: "Sawyer", Email: "tom@email.com", Position: "Designer", Status: models.StatusRejected},
	}
}

func ids(list []models.Application) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ApplicationID)
	}
	return out
}

func TestFilterApplicationsIdentity(t *testing.T) {
	apps := sampleApplications()

	assert.Equal(t, apps, FilterApplications(apps, Filter{}))
	assert.Equal(t, apps, FilterApplications(apps, Filter{Status: "all"}))
}

func TestFilterApplicationsByStatus(t *testing.T) {
	got := FilterApplications(sampleApplications(), Filter{Status: "reviewed"})
	assert.Equal(t, []string{"a2"}, ids(got))
}

func TestFilterApplicationsSearchIsCaseInsensitive(t *testing.T) {
	apps := sampleApplications()

	assert.Equal(t, []string{"a1"}, ids(FilterApplications(apps, Filter{Search: "SARAH"})))
	assert.Equal(t, []string{"a1"}, ids(FilterApplications(apps, Filter{Search: "sarah"})))
}

func TestFilterApplicationsSearchSpansFields(t *testing.T) {
	apps := sampleApplications()

	// position
	assert.Equal(t, []string{"a1", "a3"}, ids(FilterApplications(apps, Filter{Search: "frontend"})))
	// email
	assert.Equal(t, []string{"a2"}, ids(FilterApplications(apps, Filter{Search: "mike.chen@"})))
	// last name
	assert.Equal(t, []string{"a4"}, ids(FilterApplications(apps, Filter{Search: "sawyer"})))
}

func TestFilterApplicationsCombinesStatusAndSearch(t *testing.T) {
	apps := sampleApplications()

	got := FilterApplications(apps, Filter{Status: "pending", Search: "frontend"})
	assert.Equal(t, []string{"a1"}, ids(got))

	got = FilterApplications(apps, Filter{Status: "rejected", Search: "frontend"})
	assert.Empty(t, got)
}

func TestFilterApplicationsPreservesOrder(t *testing.T) {
	apps := sampleApplications()
	got := FilterApplications(apps, Filter{Search: "developer"})
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids(got))
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(sampleApplications())

	assert.Equal(t, 1, counts[models.StatusPending])
	assert.Equal(t, 1, counts[models.StatusReviewed])
	assert.Equal(t, 1, counts[models.StatusInterviewed])
	assert.Equal(t, 0, counts[models.StatusHired])
	assert.Equal(t, 1, counts[models.StatusRejected])
}

func TestCountByStatusEmptyListHasAllKeys(t *testing.T) {
	counts := CountByStatus(nil)
	assert.Len(t, counts, len(models.ApplicationStatuses))
	for _, s := range models.ApplicationStatuses {
		assert.Contains(t, counts, s)
	}
}
