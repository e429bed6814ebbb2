package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/talentflow/internal/dto"
	"github.com/fadilmartias/talentflow/internal/model"
)

func queryFixture() []model.ApplicationRecord {
	return []model.ApplicationRecord{
		{ID: "1", FirstName: "Ana", LastName: "Lee", Email: "ana@x.com", Position: "Data Analyst", Department: "Engineering", Status: model.StatusPending},
		{ID: "2", FirstName: "Bo", LastName: "Kim", Email: "bo@y.org", Position: "Software Engineer", Department: "Sales", Status: model.StatusApproved},
		{ID: "3", FirstName: "Cy", LastName: "Ortiz", Email: "cy@z.net", Position: "Product Manager", Department: "Finance", Status: model.StatusRejected},
		{ID: "4", FirstName: "Dee", LastName: "Engel", Email: "dee@z.net", Position: "HR Coordinator", Department: "Human Resources", Status: model.StatusPending},
		{ID: "5", FirstName: "Eli", LastName: "Fox", Email: "eli@q.io", Position: "Sales Representative", Department: "Sales", Status: model.StatusApproved},
	}
}

func ids(records []model.ApplicationRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterIdentity(t *testing.T) {
	records := queryFixture()
	assert.Equal(t, records, FilterApplications(records, "", FilterAll))
}

func TestFilterApplications(t *testing.T) {
	tests := []struct {
		name   string
		search string
		filter StatusFilter
		want   []string
	}{
		{name: "substring across position, department and name", search: "eng", filter: FilterAll, want: []string{"1", "2", "4"}},
		{name: "case insensitive", search: "ENG", filter: FilterAll, want: []string{"1", "2", "4"}},
		{name: "email", search: "z.net", filter: FilterAll, want: []string{"3", "4"}},
		{name: "status only", search: "", filter: StatusFilter(model.StatusApproved), want: []string{"2", "5"}},
		{name: "status and search", search: "sales", filter: StatusFilter(model.StatusApproved), want: []string{"2", "5"}},
		{name: "status excludes search hit", search: "eng", filter: StatusFilter(model.StatusPending), want: []string{"1", "4"}},
		{name: "phone is not searched", search: "555", filter: FilterAll, want: []string{}},
		{name: "no hit", search: "zzz", filter: StatusFilter(model.StatusRejected), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterApplications(queryFixture(), tt.search, tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := queryFixture()
	_ = FilterApplications(records, "eng", StatusFilter(model.StatusPending))
	assert.Equal(t, queryFixture(), records)
}

func TestFilterEmptyResultIsNotNil(t *testing.T) {
	got := FilterApplications(nil, "x", FilterAll)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseStatusFilter(t *testing.T) {
	for in, want := range map[string]StatusFilter{
		"":         FilterAll,
		"all":      FilterAll,
		"Pending":  StatusFilter(model.StatusPending),
		"approved": StatusFilter(model.StatusApproved),
		"rejected": StatusFilter(model.StatusRejected),
	} {
		got, err := ParseStatusFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStatusFilter("archived")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)
}

func TestCountByStatus(t *testing.T) {
	assert.Equal(t, dto.StatsDTO{Total: 5, Pending: 2, Approved: 2, Rejected: 1}, CountByStatus(queryFixture()))
	assert.Equal(t, dto.StatsDTO{}, CountByStatus(nil))
}
