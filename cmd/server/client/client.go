// Package client provides test commands for the tracker gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/CWSpear/stumpy/internal/handlers/tracker/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the tracker",
	Long:  `Client commands drive a running tracker server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Items
	ClientCmd.AddCommand(itemsCmd)
	ClientCmd.AddCommand(setItemCmd)
	ClientCmd.AddCommand(incrementItemCmd)

	// Dungeons
	ClientCmd.AddCommand(dungeonsCmd)
	ClientCmd.AddCommand(dungeonCmd)
	ClientCmd.AddCommand(bossCmd)

	// Locations
	ClientCmd.AddCommand(availabilityCmd)
	ClientCmd.AddCommand(toggleLocationCmd)
	ClientCmd.AddCommand(resetCmd)

	// Settings and snapshots
	ClientCmd.AddCommand(settingsCmd)
	ClientCmd.AddCommand(saveSnapshotCmd)
	ClientCmd.AddCommand(loadSnapshotCmd)
}

// createTrackerClient connects to the server and returns a tracker client
// with a cleanup func
func createTrackerClient() (v1alpha1.TrackerServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewTrackerServiceClient(conn), cleanup, nil
}

// withClient runs fn with a connected client and a request deadline
func withClient(fn func(ctx context.Context, client v1alpha1.TrackerServiceClient) error) error {
	client, cleanup, err := createTrackerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}
