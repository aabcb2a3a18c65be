package filter

import (
	"strings"

	"web3jobs/internal/model"
)

// Spec describes one filter evaluation over a visible job collection.
// Facets compose with AND across fields; within a facet a job matches if
// its value is any of the selected ones. Empty fields constrain nothing,
// so the zero value is the clear-all state and matches every job.
type Spec struct {
	Search           string
	JobTypes         []model.JobType
	Categories       []model.JobCategory
	ExperienceLevels []model.ExperienceLevel
}

// SeedCategory builds the initial spec for a deep link carrying a single
// category value. Unknown values are ignored rather than rejected.
func SeedCategory(category string) Spec {
	c := model.JobCategory(category)
	if !c.Valid() {
		return Spec{}
	}
	return Spec{Categories: []model.JobCategory{c}}
}

func (s Spec) IsEmpty() bool {
	return s.Search == "" &&
		len(s.JobTypes) == 0 &&
		len(s.Categories) == 0 &&
		len(s.ExperienceLevels) == 0
}

// Matches tests a single job against every active predicate.
func (s Spec) Matches(j *model.Job) bool {
	if s.Search != "" && !matchesSearch(j, s.Search) {
		return false
	}
	if len(s.JobTypes) > 0 && !containsType(s.JobTypes, j.Type) {
		return false
	}
	if len(s.Categories) > 0 && !containsCategory(s.Categories, j.Category) {
		return false
	}
	if len(s.ExperienceLevels) > 0 && !containsExperience(s.ExperienceLevels, j.Experience) {
		return false
	}
	return true
}

// Apply reduces jobs to the subsequence matching the spec. Relative order
// is preserved; the input is expected to arrive newest-first and is never
// re-sorted here.
func Apply(jobs []model.Job, s Spec) []model.Job {
	if s.IsEmpty() {
		return jobs
	}
	results := make([]model.Job, 0, len(jobs))
	for i := range jobs {
		if s.Matches(&jobs[i]) {
			results = append(results, jobs[i])
		}
	}
	return results
}

// Case-insensitive substring over title, company, description and each
// skill entry.
func matchesSearch(j *model.Job, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(j.Title), needle) ||
		strings.Contains(strings.ToLower(j.Company), needle) ||
		strings.Contains(strings.ToLower(j.Description), needle) {
		return true
	}
	for _, skill := range j.Skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

func containsType(types []model.JobType, t model.JobType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func containsCategory(categories []model.JobCategory, c model.JobCategory) bool {
	for _, v := range categories {
		if v == c {
			return true
		}
	}
	return false
}

func containsExperience(levels []model.ExperienceLevel, e model.ExperienceLevel) bool {
	for _, v := range levels {
		if v == e {
			return true
		}
	}
	return false
}
