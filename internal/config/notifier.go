package config

import (
	"os"
	"sync"
	"time"
)

type NotifierConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

var (
	notifierConfig *NotifierConfig
	notifierOnce   sync.Once
)

func LoadNotifierConfig() *NotifierConfig {
	notifierOnce.Do(func() {
		notifierConfig = &NotifierConfig{
			WebhookURL: os.Getenv("DECISION_WEBHOOK_URL"),
			Timeout:    time.Duration(getEnvInt("DECISION_WEBHOOK_TIMEOUT_SECONDS", 5)) * time.Second,
		}
	})
	return notifierConfig
}
