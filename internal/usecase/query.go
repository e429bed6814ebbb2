package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/talentflow/internal/dto"
	"github.com/fadilmartias/talentflow/internal/model"
)

type StatusFilter string

const FilterAll StatusFilter = "all"

var ErrInvalidStatusFilter = errors.New("status must be all, pending, approved or rejected")

// ParseStatusFilter maps a query value to a filter; empty means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == string(FilterAll) {
		return FilterAll, nil
	}
	if !model.Status(v).IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatusFilter, s)
	}
	return StatusFilter(v), nil
}

func (f StatusFilter) matches(r model.ApplicationRecord) bool {
	return f == FilterAll || model.Status(f) == r.Status
}

// FilterApplications keeps the records matching both the status filter and the search
// text, in input order. The search is a case-insensitive substring test over name,
// email, position and department.
func FilterApplications(records []model.ApplicationRecord, search string, filter StatusFilter) []model.ApplicationRecord {
	needle := strings.ToLower(search)
	out := make([]model.ApplicationRecord, 0, len(records))
	for _, r := range records {
		if filter.matches(r) && matchesSearch(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matchesSearch(r model.ApplicationRecord, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{r.FirstName, r.LastName, r.Email, r.Position, r.Department} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func CountByStatus(records []model.ApplicationRecord) dto.StatsDTO {
	stats := dto.StatsDTO{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusApproved:
			stats.Approved++
		case model.StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}
