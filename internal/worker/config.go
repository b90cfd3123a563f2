// Package worker consumes booking events from Pub/Sub and fans them out
// to the operator's notification channels.
package worker

import (
	"os"
	"time"
)

// Config holds configuration for the notification worker.
type Config struct {
	// ProjectID is the GCP project the subscription lives in.
	ProjectID string

	// SubscriptionName receives booking events.
	SubscriptionName string

	// WebhookURL is the operator endpoint bookings are delivered to.
	// Empty disables webhook delivery (events are logged only).
	WebhookURL string

	// WebhookSecret signs webhook payloads.
	WebhookSecret string

	// DeliveryTimeout bounds the end-to-end handling of one message,
	// including retries. Default: 2 minutes.
	DeliveryTimeout time.Duration
}

// ConfigFromEnv creates a Config from environment variables.
func ConfigFromEnv() Config {
	timeout, err := time.ParseDuration(getEnvOrDefault("DELIVERY_TIMEOUT", "2m"))
	if err != nil {
		timeout = 2 * time.Minute
	}

	return Config{
		ProjectID:        getEnvOrDefault("PUBSUB_PROJECT_ID", "sugbotours"),
		SubscriptionName: getEnvOrDefault("PUBSUB_SUBSCRIPTION", "booking-events-worker"),
		WebhookURL:       os.Getenv("WEBHOOK_URL"),
		WebhookSecret:    os.Getenv("WEBHOOK_SECRET"),
		DeliveryTimeout:  timeout,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
