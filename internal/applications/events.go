package applications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"

	"github.com/badgerpadel/community-backend/pkg/enums"
	"github.com/badgerpadel/community-backend/pkg/logger"
)

const (
	EventSubmitted = "partner_application.submitted"
	EventApproved  = "partner_application.approved"
	EventRejected  = "partner_application.rejected"
)

// Event describes a lifecycle change on a partner application.
type Event struct {
	Type          string                  `json:"type"`
	ApplicationID uuid.UUID               `json:"application_id"`
	PartnerID     *uuid.UUID              `json:"partner_id,omitempty"`
	Name          string                  `json:"name"`
	PartnerType   enums.PartnerType       `json:"partner_type"`
	Status        enums.ApplicationStatus `json:"status"`
	OccurredAt    time.Time               `json:"occurred_at"`
}

// EventPublisher pushes application lifecycle events to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

type topicPublisher interface {
	Publish(ctx context.Context, msg *pubsub.Message) *pubsub.PublishResult
}

// PubSubPublisher emits application events on the configured topic.
type PubSubPublisher struct {
	topic topicPublisher
}

// NewPubSubPublisher wraps the Pub/Sub publisher handle.
func NewPubSubPublisher(topic *pubsub.Publisher) (*PubSubPublisher, error) {
	if topic == nil {
		return nil, fmt.Errorf("publisher topic is required")
	}
	return &PubSubPublisher{topic: topic}, nil
}

// Publish sends the event and waits for the broker acknowledgement.
func (p *PubSubPublisher) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	result := p.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event_type":     event.Type,
			"application_id": event.ApplicationID.String(),
		},
	})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// publishBestEffort logs and swallows publish failures; decisions never
// roll back because a notification could not be delivered.
func publishBestEffort(ctx context.Context, events EventPublisher, logg *logger.Logger, event Event) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, event); err != nil && logg != nil {
		logCtx := logg.WithFields(ctx, map[string]any{
			"event_type":     event.Type,
			"application_id": event.ApplicationID.String(),
		})
		logg.Warn(logCtx, "application event publish failed")
	}
}
