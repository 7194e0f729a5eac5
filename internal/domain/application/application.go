package application

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusHired    Status = "hired"
)

func ValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusAccepted, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Applicant is one student's application as the remote API reports it
// in a per-job applicant group.
type Applicant struct {
	ID        string `json:"_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Resume    string `json:"resume,omitempty"`
	Status    Status `json:"status"`
	AppliedAt string `json:"appliedAt,omitempty"`
}

// Group collects the applicants for one job posting.
type Group struct {
	JobID      string      `json:"jobid"`
	JobTitle   string      `json:"jobTitle"`
	Applicants []Applicant `json:"applicants"`
}
