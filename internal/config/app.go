package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type AppConfig struct {
	Name         string
	Env          string
	Port         string
	BaseURL      string
	ReviewerName string
	RateLimitMax int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		appConfig = &AppConfig{
			Name:         getEnv("APP_NAME", "TalentFlow"),
			Env:          env,
			Port:         getEnv("APP_PORT", ":3000"),
			BaseURL:      os.Getenv("APP_URL"),
			ReviewerName: getEnv("REVIEWER_NAME", "HR Manager"),
			RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 50),
		}
	})
	return appConfig
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
