package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Topic carries every entity lifecycle event.
const Topic = "mentorship.events"

// Event types follow the "<entity>.<action>" convention.
const (
	UserCreated       = "user.created"
	UserUpdated       = "user.updated"
	UserDeleted       = "user.deleted"
	UserSignedUp      = "user.signed_up"
	InstructorCreated = "instructor.created"
	InstructorUpdated = "instructor.updated"
	InstructorDeleted = "instructor.deleted"
	SessionCreated    = "session.created"
	SessionUpdated    = "session.updated"
	SessionDeleted    = "session.deleted"
)

// Event describes one completed entity mutation.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType string, payload interface{}) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// EventPublisher publishes entity lifecycle events. Publishing happens after
// the mutation committed; a failed publish is logged by the caller and never
// fails the request.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// WatermillPublisher adapts a watermill message.Publisher to EventPublisher.
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
}

// NewGoChannelPublisher builds the in-process default backend.
func NewGoChannelPublisher(logger *slog.Logger) *WatermillPublisher {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return &WatermillPublisher{publisher: pubSub, topic: Topic}
}

// NewKafkaPublisher builds the Kafka backend, used when brokers are configured.
func NewKafkaPublisher(brokers []string, logger *slog.Logger) (*WatermillPublisher, error) {
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return &WatermillPublisher{publisher: publisher, topic: Topic}, nil
}

func (p *WatermillPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_type", event.Type)
	msg.SetContext(ctx)

	return p.publisher.Publish(p.topic, msg)
}

func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}
