package pubsub

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont-library/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PubSubEventPublisher implements domain.EventPublisher on Google Cloud Pub/Sub. Events of
// the same book or loan share an ordering key, so subscribers that enable ordering see
// them in the order they were recorded.
type PubSubEventPublisher struct {
	client *pubsubV2.Client

	mu         sync.Mutex
	publishers map[domain.OutboxTopic]*pubsubV2.Publisher
}

func NewPubSubEventPublisher(client *pubsubV2.Client) *PubSubEventPublisher {
	return &PubSubEventPublisher{
		client:     client,
		publishers: map[domain.OutboxTopic]*pubsubV2.Publisher{},
	}
}

// PublishEvent publishes the event payload to the topic recorded in the outbox entry and
// waits for the broker to acknowledge it.
func (p *PubSubEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", string(event.Topic)),
		),
	)
	defer span.End()

	key := orderingKey(event)
	publisher := p.publisher(event.Topic)
	result := publisher.Publish(spanCtx, &pubsubV2.Message{
		Data:        event.Payload,
		OrderingKey: key,
		Attributes: map[string]string{
			"event_id":    event.ID.String(),
			"event_type":  string(event.EventType),
			"entity_type": string(event.EntityType),
			"entity_id":   strconv.FormatInt(event.EntityID, 10),
		},
	})

	_, err := result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		// a failed ordered publish pauses its key until resumed
		publisher.ResumePublish(key)
		return err
	}
	return nil
}

// Stop flushes and stops every topic publisher created so far.
func (p *PubSubEventPublisher) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for topic, publisher := range p.publishers {
		publisher.Stop()
		delete(p.publishers, topic)
	}
}

func (p *PubSubEventPublisher) publisher(topic domain.OutboxTopic) *pubsubV2.Publisher {
	p.mu.Lock()
	defer p.mu.Unlock()

	publisher, ok := p.publishers[topic]
	if !ok {
		publisher = p.client.Publisher(string(topic))
		publisher.EnableMessageOrdering = true
		p.publishers[topic] = publisher
	}
	return publisher
}

// orderingKey groups the events of one aggregate, e.g. "Book-11".
func orderingKey(event domain.OutboxEvent) string {
	return fmt.Sprintf("%s-%d", event.EntityType, event.EntityID)
}

// InitPublisher registers the Pub/Sub domain.EventPublisher.
type InitPublisher struct {
	Client    *pubsubV2.Client `resolve:""`
	publisher *PubSubEventPublisher
}

func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	i.publisher = NewPubSubEventPublisher(i.Client)
	depend.Register[domain.EventPublisher](i.publisher)
	return ctx, nil
}

func (i *InitPublisher) Close() {
	if i.publisher != nil {
		i.publisher.Stop()
	}
}
