package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog"

	"github.com/sugbotours/sugbotours/internal/booking"
)

// PublisherConfig holds configuration for the Pub/Sub publisher.
type PublisherConfig struct {
	ProjectID string
	TopicName string
	Logger    zerolog.Logger
}

// Publisher publishes booking events to a Pub/Sub topic. It implements
// booking.EventPublisher.
type Publisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicName string
	logger    zerolog.Logger
}

// NewPublisher creates a new Pub/Sub publisher.
func NewPublisher(ctx context.Context, cfg PublisherConfig) (*Publisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	return &Publisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicName),
		topicName: cfg.TopicName,
		logger:    cfg.Logger,
	}, nil
}

// PublishBookingCreated publishes a booking-created event. The call blocks
// until the message is accepted by the server or the context ends.
func (p *Publisher) PublishBookingCreated(ctx context.Context, b *booking.Booking) error {
	event := NewBookingCreatedEvent(b)

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializing event: %w", err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event": EventBookingCreated,
		},
	})

	id, err := result.Get(ctx)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", p.topicName, err)
	}

	p.logger.Debug().
		Str("booking_id", b.ID).
		Str("message_id", id).
		Str("topic", p.topicName).
		Msg("booking event published")

	return nil
}

// Close flushes pending messages and closes the client.
func (p *Publisher) Close() error {
	p.publisher.Stop()
	return p.client.Close()
}

var _ booking.EventPublisher = (*Publisher)(nil)
