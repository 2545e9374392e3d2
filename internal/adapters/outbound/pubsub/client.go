package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// InitClient creates the Pub/Sub client that carries dispatch audit records.
// Setting PUBSUB_PROJECT_ID to "-" disables it and no client is registered.
// With EmulatorHost set the client talks plaintext gRPC to a local emulator.
type InitClient struct {
	Logger       *log.Logger `resolve:""`
	ProjectID    string      `config:"PUBSUB_PROJECT_ID" default:"-"`
	EmulatorHost string      `config:"PUBSUB_EMULATOR_HOST" default:"-"`
	client       *pubsubV2.Client
}

// Initialize registers the *pubsub.Client when a project is configured.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		if i.ProjectID == "-" || i.ProjectID == "" {
			i.Logger.Println("InitClient: pubsub disabled, dispatch audit records are only logged")
			return ctx, nil
		}
		client, err := pubsubV2.NewClient(ctx, i.ProjectID, i.clientOptions()...)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
		i.Logger.Printf("InitClient: publishing to project %s", i.ProjectID)
	}

	depend.Register(i.client)
	return ctx, nil
}

func (i *InitClient) clientOptions() []option.ClientOption {
	if i.EmulatorHost == "-" || i.EmulatorHost == "" {
		return nil
	}
	return []option.ClientOption{
		option.WithEndpoint(i.EmulatorHost),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	}
}

// Close flushes pending publishes and releases the connection.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}
