package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/talentflow/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormSnapshotStore struct {
	db *gorm.DB
}

func NewGormSnapshotStore(db *gorm.DB) *GormSnapshotStore {
	return &GormSnapshotStore{db}
}

func (r *GormSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	var snap model.Snapshot
	err := r.db.WithContext(ctx).First(&snap, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(snap.Value), nil
}

// Save upserts the row for key.
func (r *GormSnapshotStore) Save(ctx context.Context, key string, value []byte) error {
	snap := model.Snapshot{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snap).Error
}
