package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/talentflow/internal/model"
	"github.com/fadilmartias/talentflow/internal/repository"
	"github.com/fadilmartias/talentflow/internal/util"
)

const storageKey = "employeeApplications"

type recordingNotifier struct {
	calls []model.ApplicationRecord
	err   error
}

func (n *recordingNotifier) NotifyDecision(_ context.Context, rec model.ApplicationRecord) error {
	n.calls = append(n.calls, rec)
	return n.err
}

type fixture struct {
	uc        *ApplicationUsecase
	store     *repository.ApplicationStore
	snapshots *repository.MemorySnapshotStore
	notifier  *recordingNotifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	snapshots := repository.NewMemorySnapshotStore()
	store := repository.NewApplicationStore(snapshots, storageKey, log)
	store.Load(context.Background())
	notifier := &recordingNotifier{}

	uc := NewApplicationUsecase(store, notifier, "HR Manager", log)
	clock := testNow
	uc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("app-%06d", seq)
	}
	return fixture{uc: uc, store: store, snapshots: snapshots, notifier: notifier}
}

func TestSubmitThenReviewScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	rec, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, rec.Status)
	assert.Nil(t, rec.ReviewedAt)
	assert.Equal(t, []model.ApplicationRecord{rec}, f.store.Snapshot())

	reviewed, err := f.uc.Review(ctx, rec.ID, "approved", "")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, reviewed.Status)
	assert.Equal(t, "HR Manager", reviewed.ReviewedBy)
	require.NotNil(t, reviewed.ReviewedAt)
	assert.True(t, reviewed.ReviewedAt.After(reviewed.SubmittedAt))

	require.Len(t, f.notifier.calls, 1)
	assert.Equal(t, reviewed, f.notifier.calls[0])
}

func TestSubmitRejectsInvalidDraft(t *testing.T) {
	f := newFixture(t)
	draft := anaDraft()
	draft.Email = "bob@@x"
	draft.Skills = ""

	_, err := f.uc.Submit(context.Background(), draft)

	var formErr *util.FormError
	require.True(t, errors.As(err, &formErr))
	assert.Equal(t, map[string]string{
		"email":  "Email is invalid",
		"skills": "Skills are required",
	}, formErr.Errors)
	assert.Empty(t, f.store.Snapshot())
}

func TestSubmitIssuesDistinctIDs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		rec, err := f.uc.Submit(ctx, anaDraft())
		require.NoError(t, err)
		assert.False(t, seen[rec.ID], "id %s issued twice", rec.ID)
		seen[rec.ID] = true
	}
	assert.Len(t, f.store.Snapshot(), 20)
}

func TestSubmitRetriesCollidingID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ids := []string{"dup", "dup", "fresh"}
	f.uc.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)
	second, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)

	assert.Equal(t, "dup", first.ID)
	assert.Equal(t, "fresh", second.ID)
}

func TestSubmitDefaultIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.uc.newID = uuid.NewString

	a, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)
	b, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.Reference(), 6)
}

func TestReviewTwiceKeepsFirstDecision(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)

	first, err := f.uc.Review(ctx, rec.ID, "rejected", "Alice")
	require.NoError(t, err)

	_, err = f.uc.Review(ctx, rec.ID, "approved", "Bob")
	assert.ErrorIs(t, err, ErrIllegalTransition)

	stored, err := f.uc.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, first, stored)
	assert.Len(t, f.notifier.calls, 1)
}

func TestReviewLeavesOtherRecordsUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)
	b, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)

	_, err = f.uc.Review(ctx, b.ID, "approved", "Alice")
	require.NoError(t, err)

	got, err := f.uc.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestReviewErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)

	_, err = f.uc.Review(ctx, "nope", "approved", "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.uc.Review(ctx, rec.ID, "pending", "")
	assert.ErrorIs(t, err, ErrInvalidDecision)

	assert.Empty(t, f.notifier.calls)
}

func TestReviewSucceedsWhenNotifierFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.notifier.err = errors.New("webhook down")
	rec, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)

	reviewed, err := f.uc.Review(ctx, rec.ID, "approved", "Alice")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, reviewed.Status)
}

func TestMutationsArePersisted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec, err := f.uc.Submit(ctx, anaDraft())
	require.NoError(t, err)
	_, err = f.uc.Review(ctx, rec.ID, "approved", "Alice")
	require.NoError(t, err)

	reloaded := repository.NewApplicationStore(f.snapshots, storageKey, nil)
	reloaded.Load(ctx)
	assert.Equal(t, f.store.Snapshot(), reloaded.Snapshot())
}

func TestListAndStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	draft := anaDraft()
	a, err := f.uc.Submit(ctx, draft)
	require.NoError(t, err)
	draft.FirstName = "Bo"
	draft.Department = "Sales"
	draft.Position = "Sales Representative"
	b, err := f.uc.Submit(ctx, draft)
	require.NoError(t, err)
	_, err = f.uc.Review(ctx, b.ID, "rejected", "Alice")
	require.NoError(t, err)

	records, stats, err := f.uc.List("", "all")
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID}, ids(records))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Rejected)

	records, stats, err = f.uc.List("ENGINEERING", "")
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, ids(records))
	assert.Equal(t, 2, stats.Total, "stats cover the whole collection")

	_, _, err = f.uc.List("", "archived")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)

	assert.Equal(t, stats, f.uc.Stats())
}
