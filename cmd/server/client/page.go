package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/handlers/dashboard/v1alpha1"
)

type callFunc func(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Show the current page",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(func(c v1alpha1.DashboardServiceClient) callFunc { return c.GetPage }, nil)
	},
}

var viewCmd = &cobra.Command{
	Use:   "view [creature-id]",
	Short: "Open a creature's detail page",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return call(func(c v1alpha1.DashboardServiceClient) callFunc { return c.View }, map[string]any{v1alpha1.FieldID: id})
	},
}

var pickCmd = &cobra.Command{
	Use:   "pick [creature-id]",
	Short: "Add a creature to the comparison",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return call(func(c v1alpha1.DashboardServiceClient) callFunc { return c.Pick }, map[string]any{v1alpha1.FieldID: id})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear a complete comparison",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(func(c v1alpha1.DashboardServiceClient) callFunc { return c.Reset }, nil)
	},
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("creature id must be a positive integer, got %q", arg)
	}
	return id, nil
}

// call sends one request with the shared flags applied and prints the reply
func call(method func(v1alpha1.DashboardServiceClient) callFunc, fields map[string]any) error {
	client, cleanup, err := createDashboardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if fields == nil {
		fields = map[string]any{}
	}
	if stat != "" {
		fields[v1alpha1.FieldStat] = stat
	}
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := method(client)(ctx, req)
	if err != nil {
		return fmt.Errorf("request failed: %w", errors.FromGRPCError(err))
	}

	return printResponse(resp)
}
