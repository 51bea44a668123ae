// Package event publishes store changes so observers (the API server's change
// log, an external consumer on Kafka, tests) can react without polling.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gaming-storefront/internal/model"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	CollectionChangedTopic = "collections.changed"
	OrderSubmittedTopic    = "orders.submitted"
)

type Notifier interface {
	CollectionChanged(ctx context.Context, e model.CollectionChanged)
	OrderSubmitted(ctx context.Context, e model.OrderSubmitted)
}

type publisherNotifier struct {
	publisher   message.Publisher
	topicPrefix string
	log         *slog.Logger
}

func NewNotifier(publisher message.Publisher, topicPrefix string, log *slog.Logger) Notifier {
	return &publisherNotifier{
		publisher:   publisher,
		topicPrefix: topicPrefix,
		log:         log,
	}
}

// Topic returns the full topic name for one of the topic constants.
func Topic(prefix, topic string) string {
	if prefix == "" {
		return topic
	}
	return prefix + "." + topic
}

func (n *publisherNotifier) CollectionChanged(ctx context.Context, e model.CollectionChanged) {
	n.publish(ctx, CollectionChangedTopic, e.Collection, e)
}

func (n *publisherNotifier) OrderSubmitted(ctx context.Context, e model.OrderSubmitted) {
	n.publish(ctx, OrderSubmittedTopic, e.OrderID, e)
}

// publish never fails the caller: the store write already happened and
// notification is best effort.
func (n *publisherNotifier) publish(ctx context.Context, topic, key string, payload any) {
	topic = Topic(n.topicPrefix, topic)

	body, err := json.Marshal(payload)
	if err != nil {
		n.log.ErrorContext(ctx, "encode event", "topic", topic, "err", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.Metadata.Set("key", key)
	msg.SetContext(ctx)

	if err := n.publisher.Publish(topic, msg); err != nil {
		n.log.ErrorContext(ctx, "publish event", "topic", topic, "err", err)
	}
}

type nopNotifier struct{}

// NopNotifier drops every event.
func NopNotifier() Notifier {
	return nopNotifier{}
}

func (nopNotifier) CollectionChanged(context.Context, model.CollectionChanged) {}
func (nopNotifier) OrderSubmitted(context.Context, model.OrderSubmitted)       {}

// Decode unmarshals a received message payload into dest.
func Decode(msg *message.Message, dest any) error {
	if err := json.Unmarshal(msg.Payload, dest); err != nil {
		return fmt.Errorf("decode event %s: %w", msg.UUID, err)
	}
	return nil
}
