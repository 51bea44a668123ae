package event

import (
	"context"
	"fmt"
	"log/slog"

	"gaming-storefront/internal/model"

	"github.com/ThreeDotsLabs/watermill/message"
)

// LogChanges subscribes to collection changes and logs each one until ctx is
// cancelled.
func LogChanges(ctx context.Context, subscriber message.Subscriber, topicPrefix string, log *slog.Logger) error {
	messages, err := subscriber.Subscribe(ctx, Topic(topicPrefix, CollectionChangedTopic))
	if err != nil {
		return fmt.Errorf("subscribe collection changes: %w", err)
	}

	go func() {
		for msg := range messages {
			var e model.CollectionChanged
			if err := Decode(msg, &e); err != nil {
				log.Warn("drop malformed change event", "err", err)
				msg.Ack()
				continue
			}
			log.Info("collection changed", "collection", e.Collection, "size", e.Size)
			msg.Ack()
		}
	}()

	return nil
}
