// Package client provides commands that drive a running dashboard server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/dexboard/internal/handlers/dashboard/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	jsonOutput bool
	stat       string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for a running dashboard server",
	Long:  `Client commands send dashboard events to a dexboard server over gRPC and print the resulting page.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	ClientCmd.PersistentFlags().StringVar(&stat, "stat", "", "Histogram stat for detail pages")

	ClientCmd.AddCommand(pageCmd)
	ClientCmd.AddCommand(viewCmd)
	ClientCmd.AddCommand(pickCmd)
	ClientCmd.AddCommand(resetCmd)
	ClientCmd.AddCommand(searchCmd)
}

// createDashboardClient creates a dashboard service client
func createDashboardClient() (v1alpha1.DashboardServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewDashboardServiceClient(conn), cleanup, nil
}
