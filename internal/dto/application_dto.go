package dto

import (
	"github.com/fadilmartias/talentflow/internal/model"
)

// DraftApplication is the unsaved form state of a submission.
type DraftApplication struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	Experience  string `json:"experience"`
	Education   string `json:"education"`
	Skills      string `json:"skills"`
	CoverLetter string `json:"coverLetter"`
}

// Field returns the value of the named form field, or false for an unknown name.
func (d DraftApplication) Field(name string) (string, bool) {
	switch name {
	case "firstName":
		return d.FirstName, true
	case "lastName":
		return d.LastName, true
	case "email":
		return d.Email, true
	case "phone":
		return d.Phone, true
	case "position":
		return d.Position, true
	case "department":
		return d.Department, true
	case "experience":
		return d.Experience, true
	case "education":
		return d.Education, true
	case "skills":
		return d.Skills, true
	case "coverLetter":
		return d.CoverLetter, true
	}
	return "", false
}

type ReviewRequest struct {
	Decision string `json:"decision"`
	Reviewer string `json:"reviewer"`
}

type LoginRequest struct {
	Role string `json:"role"`
}

type SubmissionDTO struct {
	Application model.ApplicationRecord `json:"application"`
	Reference   string                  `json:"reference"`
}

// StatsDTO holds per-status counts over the whole collection.
type StatsDTO struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type CatalogDTO struct {
	Positions   []string `json:"positions"`
	Departments []string `json:"departments"`
}

type SessionDTO struct {
	Role             string `json:"role"`
	SelectedRecordID string `json:"selectedRecordId,omitempty"`
}

// ValidateRequest asks for a full check, or with a field name, a re-check of one field
// against the previous errors.
type ValidateRequest struct {
	Draft  DraftApplication  `json:"draft"`
	Errors map[string]string `json:"errors"`
}

type ValidationDTO struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}
