package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hashicorp/vault/api"

	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

// InitDockerCompose starts the external dependencies declared in docker-compose.deps.yml.
type InitDockerCompose struct {
	compose *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	dc, err := compose.NewDockerCompose("../../docker-compose.deps.yml")
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	err = i.compose.
		WaitForService("postgres", wait.NewLogStrategy(
			"database system is ready to accept connections",
		)).
		WaitForService("vault", wait.NewLogStrategy(
			"Vault server started!",
		)).
		WaitForService("pubsub", wait.NewLogStrategy(
			"Server started",
		)).
		Up(ctx, compose.Wait(true))
	if err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (i InitDockerCompose) Close() {
	if i.compose != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		err := i.compose.Down(
			cancelCtx,
			compose.RemoveOrphans(true),
			compose.RemoveVolumes(true),
			compose.RemoveImages(compose.RemoveImagesLocal),
		)
		if err != nil {
			log.Printf("failed to stop docker compose: %v", err)
		}
	}
}

// InitVaultSecrets stores the database credentials in the Vault dev server, where the
// application reads them from at start-up.
type InitVaultSecrets struct {
	Secrets map[string]any
}

func (i InitVaultSecrets) Initialize(ctx context.Context) (context.Context, error) {
	cfg := api.DefaultConfig()
	cfg.Address = os.Getenv("VAULT_ADDR")

	client, err := api.NewClient(cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(os.Getenv("VAULT_TOKEN"))

	_, err = client.KVv2(os.Getenv("VAULT_MOUNT_PATH")).Put(ctx, os.Getenv("VAULT_SECRET_PATH"), i.Secrets)
	if err != nil {
		return ctx, fmt.Errorf("failed to store vault secrets: %w", err)
	}
	return ctx, nil
}
