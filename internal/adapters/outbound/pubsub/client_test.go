package pubsub

import (
	"bytes"
	"context"
	"log"
	"testing"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newTestClient(t *testing.T) *pubsubV2.Client {
	t.Helper()

	server := pstest.NewServer()
	t.Cleanup(func() { server.Close() }) //nolint:errcheck

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() }) //nolint:errcheck

	client, err := pubsubV2.NewClient(
		context.Background(),
		"test-project",
		option.WithGRPCConn(conn),
	)
	require.NoError(t, err)
	return client
}

func TestInitClient_Initialize(t *testing.T) {
	tests := map[string]struct {
		createTopics   string
		expectedTopics []string
	}{
		"creates-event-topics": {
			createTopics: "true",
			expectedTopics: []string{
				"projects/test-project/topics/Books",
				"projects/test-project/topics/Loans",
			},
		},
		"skips-topic-creation": {
			createTopics:   "false",
			expectedTopics: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t)
			ctx := context.Background()

			init := &InitClient{
				Logger:       log.New(&bytes.Buffer{}, "", 0),
				CreateTopics: tt.createTopics,
				client:       client,
			}

			_, err := init.Initialize(ctx)
			assert.NoError(t, err)

			_, err = depend.Resolve[*pubsubV2.Client]()
			assert.NoError(t, err)

			var names []string
			it := client.TopicAdminClient.ListTopics(ctx, &pubsubpb.ListTopicsRequest{Project: "projects/test-project"})
			for {
				topic, err := it.Next()
				if err != nil {
					break
				}
				names = append(names, topic.GetName())
			}
			assert.ElementsMatch(t, tt.expectedTopics, names)

			init.Close()
		})
	}
}

func TestEnsureTopics_AlreadyExists(t *testing.T) {
	client := newTestClient(t)
	defer client.Close() //nolint:errcheck

	ctx := context.Background()
	_, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: "projects/test-project/topics/Books"})
	require.NoError(t, err)

	err = ensureTopics(ctx, client, "test-project")
	assert.NoError(t, err)
}

func TestInitClient_CloseWithoutClient(t *testing.T) {
	init := &InitClient{Logger: log.New(&bytes.Buffer{}, "", 0)}
	assert.NotPanics(t, init.Close)
}
