package config

import (
	"os"
	"sync"
)

type NotifierConfig struct {
	WebhookURL string
	AuthToken  string
}

var (
	notifierConfig *NotifierConfig
	notifierOnce   sync.Once
)

// LoadNotifierConfig reads the moderation webhook settings. An empty
// WebhookURL disables the notifier.
func LoadNotifierConfig() *NotifierConfig {
	notifierOnce.Do(func() {
		notifierConfig = &NotifierConfig{
			WebhookURL: os.Getenv("MODERATION_WEBHOOK_URL"),
			AuthToken:  os.Getenv("MODERATION_WEBHOOK_TOKEN"),
		}
	})
	return notifierConfig
}
