package client

import (
	"fmt"
	"log/slog"

	"gaming-storefront/internal/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventClient bundles the publisher used by the stores with an optional
// subscriber. Subscriber is nil when events leave the process (Kafka).
type EventClient struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
}

func InitEventClient(cfg config.Events, log *slog.Logger) (*EventClient, error) {
	wmLogger := watermill.NewSlogLogger(log)

	if len(cfg.KafkaBrokers) == 0 {
		pubSub := gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, wmLogger)

		return &EventClient{
			Publisher:  pubSub,
			Subscriber: pubSub,
		}, nil
	}

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   cfg.KafkaBrokers,
		Marshaler: kafka.DefaultMarshaler{},
	}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("create kafka publisher: %w", err)
	}

	return &EventClient{
		Publisher: publisher,
	}, nil
}

func (c *EventClient) Close() error {
	return c.Publisher.Close()
}
