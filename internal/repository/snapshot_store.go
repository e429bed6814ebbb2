package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fadilmartias/talentflow/internal/model"
	"github.com/tidwall/gjson"
)

// ErrSnapshotNotFound is returned by a SnapshotStore when nothing was saved under the key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore is the key/value contract the record store persists through.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// EncodeSnapshot serializes the whole ordered collection.
func EncodeSnapshot(records []model.ApplicationRecord) ([]byte, error) {
	if records == nil {
		records = []model.ApplicationRecord{}
	}
	return json.Marshal(records)
}

// DecodeSnapshot parses a stored collection. Anything other than a JSON array is corrupt.
func DecodeSnapshot(raw []byte) ([]model.ApplicationRecord, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("snapshot is not valid json")
	}
	if !gjson.ParseBytes(raw).IsArray() {
		return nil, fmt.Errorf("snapshot is not a json array")
	}
	var records []model.ApplicationRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("snapshot record without id")
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("snapshot has duplicate id %q", r.ID)
		}
		if !r.Status.IsValid() {
			return nil, fmt.Errorf("snapshot record %q has unknown status %q", r.ID, r.Status)
		}
		seen[r.ID] = struct{}{}
	}
	if records == nil {
		records = []model.ApplicationRecord{}
	}
	return records, nil
}
