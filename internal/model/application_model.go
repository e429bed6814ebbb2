package model

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsDecision reports whether s is a terminal review outcome.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) IsValid() bool {
	return s == StatusPending || s.IsDecision()
}

// ApplicationRecord is the persisted application. JSON keys match the stored snapshot format.
type ApplicationRecord struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Position    string     `json:"position"`
	Department  string     `json:"department"`
	Experience  string     `json:"experience"`
	Education   string     `json:"education"`
	Skills      string     `json:"skills"`
	CoverLetter string     `json:"coverLetter"`
	Status      Status     `json:"status"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy  string     `json:"reviewedBy,omitempty"`
}

// IsReviewed is true once the record left pending; the review stamp is set at the same time.
func (a ApplicationRecord) IsReviewed() bool {
	return a.Status != StatusPending
}

// Reference is the short id shown to the applicant after submission.
func (a ApplicationRecord) Reference() string {
	if len(a.ID) <= 6 {
		return a.ID
	}
	return a.ID[len(a.ID)-6:]
}
