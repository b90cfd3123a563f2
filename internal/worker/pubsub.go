package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog"

	"github.com/sugbotours/sugbotours/internal/notify"
)

// Deliverer delivers a serialized event to a notification channel.
type Deliverer interface {
	Deliver(ctx context.Context, eventType string, payload []byte) error
}

// PubSubHandler consumes booking events from a Pub/Sub subscription and
// hands them to the deliverer. Messages are acked only after successful
// delivery; failures nack so Pub/Sub redelivers.
type PubSubHandler struct {
	client           *pubsub.Client
	subscriber       *pubsub.Subscriber
	subscriptionName string
	deliverer        Deliverer
	deliveryTimeout  time.Duration
	logger           zerolog.Logger
}

// PubSubConfig holds configuration for the Pub/Sub handler.
type PubSubConfig struct {
	ProjectID        string
	SubscriptionName string

	// Deliverer is optional; nil means events are logged and acked.
	Deliverer Deliverer

	// DeliveryTimeout bounds the handling of one message.
	DeliveryTimeout time.Duration

	Logger zerolog.Logger
}

// NewPubSubHandler creates a new Pub/Sub handler.
func NewPubSubHandler(ctx context.Context, cfg PubSubConfig) (*PubSubHandler, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	subscriber := client.Subscriber(cfg.SubscriptionName)

	// Configure receive settings.
	subscriber.ReceiveSettings.MaxOutstandingMessages = 10
	subscriber.ReceiveSettings.MaxExtension = 10 * time.Minute

	timeout := cfg.DeliveryTimeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}

	return &PubSubHandler{
		client:           client,
		subscriber:       subscriber,
		subscriptionName: cfg.SubscriptionName,
		deliverer:        cfg.Deliverer,
		deliveryTimeout:  timeout,
		logger:           cfg.Logger,
	}, nil
}

// Start begins processing Pub/Sub messages.
func (h *PubSubHandler) Start(ctx context.Context) error {
	h.logger.Info().
		Str("subscription", h.subscriptionName).
		Msg("starting pubsub handler")

	return h.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		h.handleMessage(ctx, msg)
	})
}

// Close closes the Pub/Sub client.
func (h *PubSubHandler) Close() error {
	return h.client.Close()
}

func (h *PubSubHandler) handleMessage(ctx context.Context, msg *pubsub.Message) {
	startTime := time.Now()

	eventType := msg.Attributes["event"]
	logger := h.logger.With().
		Str("message_id", msg.ID).
		Str("event", eventType).
		Str("publish_time", msg.PublishTime.Format(time.RFC3339)).
		Logger()

	logger.Debug().Msg("received pubsub message")

	switch eventType {
	case notify.EventBookingCreated:
		var event notify.BookingCreatedEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Error().Err(err).Msg("failed to parse booking event")
			// A malformed event never becomes parseable; drop it.
			msg.Ack()
			return
		}

		if err := h.handleBookingCreated(ctx, event, msg.Data); err != nil {
			logger.Error().Err(err).
				Str("booking_id", event.BookingID).
				Msg("booking event delivery failed")
			msg.Nack()
			return
		}

		logger.Info().
			Str("booking_id", event.BookingID).
			Dur("duration", time.Since(startTime)).
			Msg("booking event delivered")
		msg.Ack()

	default:
		logger.Warn().Msg("unknown event type")
		msg.Ack() // Ack unknown messages to prevent redelivery
	}
}

func (h *PubSubHandler) handleBookingCreated(ctx context.Context, event notify.BookingCreatedEvent, raw []byte) error {
	if h.deliverer == nil {
		h.logger.Info().
			Str("booking_id", event.BookingID).
			Int("total_price", event.TotalPrice).
			Int("group_size", event.GroupSize).
			Str("start_date", event.StartDate).
			Msg("booking created (no deliverer configured)")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.deliveryTimeout)
	defer cancel()

	return h.deliverer.Deliver(ctx, notify.EventBookingCreated, raw)
}
