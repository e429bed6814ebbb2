package model

import (
	"time"
)

// Snapshot is one stored key/value pair of the postgres snapshot driver.
type Snapshot struct {
	Key       string    `gorm:"type:varchar(128);primaryKey" json:"key"`
	Value     string    `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Snapshot) TableName() string {
	return "snapshots"
}
