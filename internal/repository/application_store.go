package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/fadilmartias/talentflow/internal/model"
	"github.com/sirupsen/logrus"
)

// ApplicationStore is the ordered in-memory record collection. It loads once from a
// SnapshotStore and writes the full collection back after every successful mutation.
type ApplicationStore struct {
	mu        sync.RWMutex
	key       string
	snapshots SnapshotStore
	records   []model.ApplicationRecord
	log       *logrus.Entry
}

func NewApplicationStore(snapshots SnapshotStore, key string, log *logrus.Logger) *ApplicationStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ApplicationStore{
		key:       key,
		snapshots: snapshots,
		records:   []model.ApplicationRecord{},
		log:       log.WithField("key", key),
	}
}

// Load replaces the in-memory collection with the stored one. A missing or unreadable
// snapshot leaves the collection empty.
func (s *ApplicationStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = []model.ApplicationRecord{}
	raw, err := s.snapshots.Load(ctx, s.key)
	if errors.Is(err, ErrSnapshotNotFound) {
		s.log.Info("no stored applications, starting empty")
		return
	}
	if err != nil {
		s.log.WithError(err).Warn("could not load applications, starting empty")
		return
	}
	records, err := DecodeSnapshot(raw)
	if err != nil {
		s.log.WithError(err).Warn("stored applications are corrupt, starting empty")
		return
	}
	s.records = records
	s.log.WithField("count", len(records)).Info("applications loaded")
}

// Snapshot returns a copy of the collection in insertion order.
func (s *ApplicationStore) Snapshot() []model.ApplicationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ApplicationRecord{}, s.records...)
}

func (s *ApplicationStore) Get(id string) (model.ApplicationRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.ApplicationRecord{}, false
}

// Mutate runs fn on a copy of the collection and, when it succeeds, installs the
// result and persists it. Calls are serialized.
func (s *ApplicationStore) Mutate(ctx context.Context, fn func([]model.ApplicationRecord) ([]model.ApplicationRecord, error)) ([]model.ApplicationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(append([]model.ApplicationRecord{}, s.records...))
	if err != nil {
		return nil, err
	}
	if next == nil {
		next = []model.ApplicationRecord{}
	}
	s.records = next
	s.persist(ctx)
	return append([]model.ApplicationRecord{}, next...), nil
}

// persist never fails the caller; the in-memory state stays authoritative.
func (s *ApplicationStore) persist(ctx context.Context) {
	raw, err := EncodeSnapshot(s.records)
	if err != nil {
		s.log.WithError(err).Error("could not encode applications")
		return
	}
	if err := s.snapshots.Save(ctx, s.key, raw); err != nil {
		s.log.WithError(err).Error("could not save applications, continuing in memory")
	}
}
