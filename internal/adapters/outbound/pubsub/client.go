package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// topics lists the broker topics the outbox relay publishes to.
var topics = []domain.OutboxTopic{
	domain.OutboxTopic_Books,
	domain.OutboxTopic_Loans,
}

// InitClient creates the Pub/Sub client and makes sure the event topics exist.
type InitClient struct {
	Logger       *log.Logger `resolve:""`
	ProjectID    string      `config:"PUBSUB_PROJECT_ID"`
	CreateTopics string      `config:"PUBSUB_CREATE_TOPICS" default:"true"`
	client       *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	if i.CreateTopics == "true" {
		if err := ensureTopics(ctx, i.client, i.client.Project()); err != nil {
			return ctx, err
		}
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}

// ensureTopics creates the event topics, ignoring the ones that already exist.
func ensureTopics(ctx context.Context, client *pubsubV2.Client, projectID string) error {
	for _, topic := range topics {
		_, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
			Name: topicName(projectID, topic),
		})
		if err != nil && status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create topic %s: %w", topic, err)
		}
	}
	return nil
}

func topicName(projectID string, topic domain.OutboxTopic) string {
	return fmt.Sprintf("projects/%s/topics/%s", projectID, topic)
}
