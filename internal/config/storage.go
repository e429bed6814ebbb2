package config

import (
	"sync"
)

const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
	StorageDriverMemory   = "memory"
)

type StorageConfig struct {
	Driver string
	// Key names the stored collection in every driver.
	Key    string
	Dir    string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		storageConfig = &StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", StorageDriverFile),
			Key:    getEnv("STORAGE_KEY", "employeeApplications"),
			Dir:    getEnv("STORAGE_DIR", "./data"),
		}
	})
	return storageConfig
}
