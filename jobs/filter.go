package jobs

import (
	"talentrack/models"
	"talentrack/utils"
)

// Filter holds the job list predicates. Search is a case-insensitive
// substring OR over title, department, and location; department and type are
// exact matches ANDed in. "all" (or empty) bypasses the respective filter.
type Filter struct {
	Status     string
	Search     string
	Department string
	Type       string
}

func matchesSearch(job *models.Job, term string) bool {
	if term == "" {
		return true
	}
	return utils.ContainsIgnoreCase(job.Title, term) ||
		utils.ContainsIgnoreCase(job.Department, term) ||
		utils.ContainsIgnoreCase(job.Location, term)
}

// FilterJobs applies the predicates to a fully fetched list.
func FilterJobs(list []models.Job, f Filter) []models.Job {
	out := make([]models.Job, 0, len(list))
	for _, job := range list {
		if f.Status != "" && f.Status != "all" && string(job.Status) != f.Status {
			continue
		}
		if f.Department != "" && f.Department != "all" && job.Department != f.Department {
			continue
		}
		if f.Type != "" && f.Type != "all" && string(job.Type) != f.Type {
			continue
		}
		if !matchesSearch(&job, f.Search) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// PublicBoard narrows a list to the jobs visible to applicants.
func PublicBoard(list []models.Job) []models.Job {
	out := make([]models.Job, 0, len(list))
	for _, job := range list {
		if VisibleOnPublicBoard(&job) {
			out = append(out, job)
		}
	}
	return out
}

// Departments returns the distinct departments of a list, in first-seen
// order, for the board's department dropdown.
func Departments(list []models.Job) []string {
	seen := make(map[string]bool, len(list))
	var out []string
	for _, job := range list {
		if !seen[job.Department] {
			seen[job.Department] = true
			out = append(out, job.Department)
		}
	}
	return out
}
