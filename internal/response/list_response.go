package response

import "github.com/fadilmartias/talentflow/internal/dto"

// ListMeta describes how a list response was derived.
type ListMeta struct {
	Search   string       `json:"search"`
	Status   string       `json:"status"`
	Returned int          `json:"returned"`
	Stats    dto.StatsDTO `json:"stats"`
}
