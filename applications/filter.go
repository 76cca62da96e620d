package applications

import (
	"talentrack/models"
	"talentrack/utils"
)

// Filter holds the HR list-view predicates. The zero value (or "all"/empty
// fields) passes everything.
type Filter struct {
	Status string
	Search string
}

func matchesSearch(app *models.Application, term string) bool {
	if term == "" {
		return true
	}
	return utils.ContainsIgnoreCase(app.FirstName, term) ||
		utils.ContainsIgnoreCase(app.LastName, term) ||
		utils.ContainsIgnoreCase(app.Position, term) ||
		utils.ContainsIgnoreCase(app.Email, term)
}

// FilterApplications applies the status and search predicates to a fully
// fetched list. Search is a case-insensitive substring match over first name,
// last name, position, and email.
func FilterApplications(list []models.Application, f Filter) []models.Application {
	out := make([]models.Application, 0, len(list))
	for _, app := range list {
		if f.Status != "" && f.Status != "all" && string(app.Status) != f.Status {
			continue
		}
		if !matchesSearch(&app, f.Search) {
			continue
		}
		out = append(out, app)
	}
	return out
}

// CountByStatus tallies a list per status for the filter tabs and dashboard.
func CountByStatus(list []models.Application) map[models.ApplicationStatus]int {
	counts := make(map[models.ApplicationStatus]int, len(models.ApplicationStatuses))
	for _, s := range models.ApplicationStatuses {
		counts[s] = 0
	}
	for _, app := range list {
		counts[app.Status]++
	}
	return counts
}
