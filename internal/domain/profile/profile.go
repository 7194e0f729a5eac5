// Package profile defines the two profile variants a job-board user
// may carry and the merge engine that fills a partial server profile
// into a fully keyed editable shape.
package profile

import "jobbox/internal/domain/user"

// StudentDefaults is the authoritative field list for the student
// variant. Education and projects default to a single blank template
// entry so an edit form always has one row to fill in.
func StudentDefaults() map[string]any {
	return map[string]any{
		"fullName":     "",
		"profileImage": "",
		"resumeLink":   "",
		"portfolio":    "",
		"skills":       []any{},
		"education": []any{
			map[string]any{"degree": "", "university": "", "year": "", "grade": ""},
		},
		"projects": []any{
			map[string]any{"name": "", "description": "", "link": "", "technologies": []any{}},
		},
		"socialLinks": map[string]any{"linkedin": "", "github": "", "twitter": ""},
		"location":    "",
		"phoneNumber": "",
		"dob":         "",
		"gender":      "",
		"languages":   []any{},
	}
}

// CompanyDefaults is the authoritative field list for the company
// variant.
func CompanyDefaults() map[string]any {
	return map[string]any{
		"companyName":   "",
		"industry":      "",
		"location":      "",
		"website":       "",
		"logo":          "",
		"description":   "",
		"foundedYear":   "",
		"employeeCount": "",
		"mainServices":  []any{},
		"headquarters":  map[string]any{"address": "", "pinCode": ""},
		"companyInfo": map[string]any{
			"type":          "",
			"parentCompany": "",
			"stockSymbols":  map[string]any{"bse": "", "nse": ""},
		},
		"contact":     map[string]any{"phone": "", "hr": ""},
		"socialLinks": map[string]any{"linkedin": "", "twitter": ""},
	}
}

// DefaultsFor selects the default shape for a role.
func DefaultsFor(role user.Role) (map[string]any, bool) {
	switch role {
	case user.RoleStudent:
		return StudentDefaults(), true
	case user.RoleCompany:
		return CompanyDefaults(), true
	default:
		return nil, false
	}
}
