package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/handlers/dashboard/v1alpha1"
	"github.com/KirkDiggler/dexboard/internal/orchestrators/dashboard"
	"github.com/KirkDiggler/dexboard/internal/store"
)

func newTestClient(t *testing.T) v1alpha1.DashboardServiceClient {
	t.Helper()

	records := store.New([]*entities.Creature{
		{ID: 1, Name: "bulbasaur", PrimaryType: "grass", ChainID: 1, Stage: 1, Height: 7},
		{ID: 4, Name: "charmander", PrimaryType: "fire", ChainID: 2, Stage: 1, Height: 6},
	})
	orch, err := dashboard.NewOrchestrator(&dashboard.Config{Records: records})
	require.NoError(t, err)
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Dashboard: orch})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterDashboardServiceServer(srv, handler)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return v1alpha1.NewDashboardServiceClient(conn)
}

func TestServiceRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	req, err := structpb.NewStruct(map[string]any{"id": 1})
	require.NoError(t, err)
	_, err = client.Pick(ctx, req)
	require.NoError(t, err)

	req, err = structpb.NewStruct(map[string]any{"id": 4})
	require.NoError(t, err)
	resp, err := client.Pick(ctx, req)
	require.NoError(t, err)

	page := resp.GetFields()["page"].GetStructValue().GetFields()
	assert.Equal(t, "comparison", page["kind"].GetStringValue())
	assert.Equal(t, "Comparing: Bulbasaur vs Charmander", page["indicator"].GetStringValue())

	reset, err := client.Reset(ctx, &structpb.Struct{})
	require.NoError(t, err)
	assert.True(t, reset.GetFields()["cleared"].GetBoolValue())
}

func TestServiceMapsErrorCodes(t *testing.T) {
	client := newTestClient(t)

	req, err := structpb.NewStruct(map[string]any{"id": 42})
	require.NoError(t, err)

	_, err = client.View(context.Background(), req)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.True(t, errors.IsNotFound(errors.FromGRPCError(err)))
}
