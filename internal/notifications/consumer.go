package notifications

import (
	"context"
	"encoding/json"
	"errors"

	pubsub "cloud.google.com/go/pubsub/v2"

	"github.com/badgerpadel/community-backend/internal/applications"
	"github.com/badgerpadel/community-backend/pkg/logger"
)

// Consumer watches Pub/Sub for application lifecycle events and records
// them for the notification pipeline. Malformed messages are acked and
// logged so the subscription never wedges on a bad payload.
type Consumer struct {
	subscription *pubsub.Subscriber
	logg         *logger.Logger
}

// NewConsumer wires the dependencies required to process application events.
func NewConsumer(subscription *pubsub.Subscriber, logg *logger.Logger) (*Consumer, error) {
	if subscription == nil {
		return nil, errors.New("notification subscription is required")
	}
	if logg == nil {
		return nil, errors.New("logger is required")
	}
	return &Consumer{
		subscription: subscription,
		logg:         logg,
	}, nil
}

// Run processes application events until the context is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	return c.subscription.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		c.process(ctx, msg)
		msg.Ack()
	})
}

func (c *Consumer) process(ctx context.Context, msg *pubsub.Message) {
	fields := map[string]any{
		"message_id": msg.ID,
		"event_type": msg.Attributes["event_type"],
	}
	logCtx := c.logg.WithFields(ctx, fields)

	var event applications.Event
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		c.logg.Error(logCtx, "failed to unmarshal application event", err)
		return
	}

	fields["application_id"] = event.ApplicationID.String()
	fields["application_name"] = event.Name
	fields["status"] = event.Status.String()
	if event.PartnerID != nil {
		fields["partner_id"] = event.PartnerID.String()
	}
	logCtx = c.logg.WithFields(ctx, fields)

	switch event.Type {
	case applications.EventSubmitted:
		c.logg.Info(logCtx, "new partner application submitted")
	case applications.EventApproved:
		c.logg.Info(logCtx, "partner application approved")
	case applications.EventRejected:
		c.logg.Info(logCtx, "partner application rejected")
	default:
		c.logg.Warn(logCtx, "unknown application event type")
	}
}
