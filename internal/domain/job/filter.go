package job

import "strings"

// Filter returns the jobs whose title, company, location or experience
// level contains term, case-insensitively. The input order is
// preserved and an empty term returns the input unchanged.
func Filter(jobs []Job, term string) []Job {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return jobs
	}
	filtered := make([]Job, 0, len(jobs))
	for _, item := range jobs {
		if matches(item, term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func matches(item Job, term string) bool {
	for _, field := range []string{item.Title, item.Company, item.Location, string(item.ExperienceLevel)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
