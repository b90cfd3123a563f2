package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/sugbotours/sugbotours/internal/api/middleware"
)

// Webhook delivery errors.
var (
	// ErrWebhookCircuitOpen is returned when the circuit breaker is open.
	ErrWebhookCircuitOpen = errors.New("webhook circuit breaker is open")

	// ErrWebhookRejected is returned when the endpoint answers with a
	// non-retryable client error.
	ErrWebhookRejected = errors.New("webhook endpoint rejected delivery")
)

// WebhookConfig holds configuration for the webhook client.
type WebhookConfig struct {
	// URL is the endpoint deliveries are POSTed to.
	URL string

	// Secret signs the payload; the signature travels in the
	// X-Sugbotours-Signature header as a hex HMAC-SHA256.
	Secret string

	// Timeout is the per-attempt request timeout.
	// Default: 10 seconds
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts.
	// Default: 3
	MaxRetries uint64

	// InitialInterval is the initial retry backoff interval.
	// Default: 500ms
	InitialInterval time.Duration

	// MaxInterval is the maximum retry backoff interval.
	// Default: 30 seconds
	MaxInterval time.Duration

	// Metrics is optional delivery instrumentation.
	Metrics *middleware.DeliveryMetrics

	Logger zerolog.Logger
}

// WebhookClient delivers events to the operator's webhook endpoint with
// retry and circuit breaker protection. Transient failures (5xx, network
// errors) are retried with exponential backoff; repeated failures trip the
// breaker so a dead endpoint does not stall the worker.
type WebhookClient struct {
	httpClient     *http.Client
	circuitBreaker *gobreaker.CircuitBreaker[int]
	config         WebhookConfig
	logger         zerolog.Logger
}

// NewWebhookClient creates a new webhook client.
func NewWebhookClient(cfg WebhookConfig) *WebhookClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = 500 * time.Millisecond
	}
	if cfg.MaxInterval == 0 {
		cfg.MaxInterval = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[int](gobreaker.Settings{
		Name:        "webhook",
		MaxRequests: 1,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},
	})

	return &WebhookClient{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		circuitBreaker: cb,
		config:         cfg,
		logger:         cfg.Logger,
	}
}

// Deliver POSTs the payload to the webhook endpoint. eventType travels in
// the X-Sugbotours-Event header. Returns nil once the endpoint accepts the
// delivery with a 2xx status.
func (c *WebhookClient) Deliver(ctx context.Context, eventType string, payload []byte) error {
	start := time.Now()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.config.InitialInterval
	bo.MaxInterval = c.config.MaxInterval
	bo.MaxElapsedTime = 0 // retries bounded by WithMaxRetries

	attempt := 0
	operation := func() error {
		if attempt > 0 && c.config.Metrics != nil {
			c.config.Metrics.RecordRetry(eventType)
		}
		attempt++

		status, err := c.circuitBreaker.Execute(func() (int, error) {
			return c.post(ctx, eventType, payload)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(ErrWebhookCircuitOpen)
			}
			return err
		}

		// 4xx means the payload will never be accepted; do not retry.
		if status >= 400 && status < 500 {
			return backoff.Permanent(fmt.Errorf("%w: status %d", ErrWebhookRejected, status))
		}

		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, c.config.MaxRetries), ctx))

	if c.config.Metrics != nil {
		c.config.Metrics.RecordDelivery(eventType, time.Since(start), err)
	}
	if err != nil {
		return err
	}

	c.logger.Debug().
		Str("event", eventType).
		Int("attempts", attempt).
		Dur("duration", time.Since(start)).
		Msg("webhook delivered")

	return nil
}

// post performs a single delivery attempt. 5xx responses are returned as
// errors so they count against the circuit breaker and get retried.
func (c *WebhookClient) post(ctx context.Context, eventType string, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Sugbotours-Event", eventType)
	if c.config.Secret != "" {
		req.Header.Set("X-Sugbotours-Signature", sign(c.config.Secret, payload))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return resp.StatusCode, fmt.Errorf("webhook endpoint returned %d", resp.StatusCode)
	}

	return resp.StatusCode, nil
}

// CircuitBreakerState returns the current state of the circuit breaker.
func (c *WebhookClient) CircuitBreakerState() gobreaker.State {
	return c.circuitBreaker.State()
}

// sign computes the hex HMAC-SHA256 of the payload.
func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
