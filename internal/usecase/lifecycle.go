package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/talentflow/internal/dto"
	"github.com/fadilmartias/talentflow/internal/model"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrIllegalTransition = errors.New("application has already been reviewed")
	ErrInvalidDecision   = errors.New("decision must be approved or rejected")
	ErrReviewerRequired  = errors.New("reviewer is required")
	ErrDuplicateID       = errors.New("application id already issued")
)

// NewRecord builds a pending record from an already validated draft.
func NewRecord(draft dto.DraftApplication, id string, now time.Time) model.ApplicationRecord {
	return model.ApplicationRecord{
		ID:          id,
		FirstName:   draft.FirstName,
		LastName:    draft.LastName,
		Email:       draft.Email,
		Phone:       draft.Phone,
		Position:    draft.Position,
		Department:  draft.Department,
		Experience:  draft.Experience,
		Education:   draft.Education,
		Skills:      draft.Skills,
		CoverLetter: draft.CoverLetter,
		Status:      model.StatusPending,
		SubmittedAt: now,
	}
}

// AppendRecord returns records with rec added at the end. The id must be new.
func AppendRecord(records []model.ApplicationRecord, rec model.ApplicationRecord) ([]model.ApplicationRecord, error) {
	for _, r := range records {
		if r.ID == rec.ID {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
	}
	next := make([]model.ApplicationRecord, 0, len(records)+1)
	next = append(next, records...)
	return append(next, rec), nil
}

// ParseDecision accepts "approved" or "rejected", case-insensitively.
func ParseDecision(s string) (model.Status, error) {
	decision := model.Status(strings.ToLower(strings.TrimSpace(s)))
	if !decision.IsDecision() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDecision, s)
	}
	return decision, nil
}

// ApplyReview returns a new collection where the pending record id carries the decision
// and review stamp. Every other record is returned unchanged.
func ApplyReview(records []model.ApplicationRecord, id string, decision model.Status, reviewer string, now time.Time) ([]model.ApplicationRecord, error) {
	if !decision.IsDecision() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}
	if strings.TrimSpace(reviewer) == "" {
		return nil, ErrReviewerRequired
	}

	idx := -1
	for i, r := range records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if records[idx].IsReviewed() {
		return nil, fmt.Errorf("%w: %s is %s", ErrIllegalTransition, id, records[idx].Status)
	}

	next := make([]model.ApplicationRecord, len(records))
	copy(next, records)
	reviewedAt := now
	next[idx].Status = decision
	next[idx].ReviewedAt = &reviewedAt
	next[idx].ReviewedBy = reviewer
	return next, nil
}
