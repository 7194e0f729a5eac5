package job

import (
	"strings"

	"jobbox/internal/common"
)

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "Entry"
	ExperienceMid    ExperienceLevel = "Mid"
	ExperienceSenior ExperienceLevel = "Senior"
	ExperienceExpert ExperienceLevel = "Expert Level"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
	EmploymentRemote     EmploymentType = "Remote"
)

type Job struct {
	ID              string          `json:"_id,omitempty"`
	Title           string          `json:"title"`
	Company         string          `json:"company,omitempty"`
	Description     string          `json:"description"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	EmploymentType  EmploymentType  `json:"employmentType"`
	Openings        int             `json:"openings"`
	Location        string          `json:"location"`
	Salary          string          `json:"salary"`
	DeadlineDate    string          `json:"deadlineDate"`
	Highlights      []string        `json:"jobHighlights"`
	Requirements    []string        `json:"requirements"`
	KeySkills       []string        `json:"keySkills"`
	PostedBy        string          `json:"postedBy,omitempty"`
}

func validExperienceLevel(level ExperienceLevel) bool {
	switch level {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExpert:
		return true
	}
	return false
}

func validEmploymentType(kind EmploymentType) bool {
	switch kind {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship, EmploymentRemote:
		return true
	}
	return false
}

// Validate runs the client-side required-field checks before a posting
// or edit request is issued.
func (j Job) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(j.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(j.Description) == "" {
		fields["description"] = "description is required"
	}
	if !validExperienceLevel(j.ExperienceLevel) {
		fields["experienceLevel"] = "unknown experience level"
	}
	if !validEmploymentType(j.EmploymentType) {
		fields["employmentType"] = "unknown employment type"
	}
	if j.Openings < 0 {
		fields["openings"] = "openings must not be negative"
	}
	if strings.TrimSpace(j.Location) == "" {
		fields["location"] = "location is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}
