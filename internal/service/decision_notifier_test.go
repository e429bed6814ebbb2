package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/talentflow/internal/model"
)

func reviewedRecord() model.ApplicationRecord {
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	return model.ApplicationRecord{
		ID:         "app-1",
		FirstName:  "Ana",
		LastName:   "Lee",
		Email:      "ana@x.com",
		Position:   "Data Analyst",
		Department: "Engineering",
		Status:     model.StatusApproved,
		ReviewedAt: &at,
		ReviewedBy: "HR Manager",
	}
}

func TestDecisionNotifierPostsEvent(t *testing.T) {
	var got DecisionEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewDecisionNotifier(srv.URL, time.Second)
	require.NoError(t, n.NotifyDecision(context.Background(), reviewedRecord()))

	assert.Equal(t, "application.reviewed", got.Event)
	assert.Equal(t, "app-1", got.ID)
	assert.Equal(t, model.StatusApproved, got.Status)
	assert.Equal(t, "HR Manager", got.ReviewedBy)
	assert.Equal(t, "Engineering", got.Department)
}

func TestDecisionNotifierReportsHTTPErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	n := NewDecisionNotifier(srv.URL, time.Second)
	err := n.NotifyDecision(context.Background(), reviewedRecord())
	assert.Error(t, err)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&hits), int32(1))
}

func TestDecisionNotifierDisabledWithoutURL(t *testing.T) {
	n := NewDecisionNotifier("", time.Second)
	assert.False(t, n.Enabled())
	assert.NoError(t, n.NotifyDecision(context.Background(), reviewedRecord()))
}
