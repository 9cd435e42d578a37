package grpc_control

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"market-viewer/src/format"
	"market-viewer/src/logger"
	"market-viewer/src/models"
)

func fixtureState() models.MPollingState {
	return models.MPollingState{
		Status: models.StatusReady,
		Snapshot: &models.MSnapshot{
			Gold: []models.MGoldInstrument{
				{Instrument: models.Instrument{Symbol: "IR_COIN_EMAMI", Name: "Emami Coin", Price: 520000000}},
			},
			Currency: []models.MCurrencyInstrument{
				{Instrument: models.Instrument{Symbol: "USD", Name: "US Dollar", Price: 500000, ChangeValue: 1000, ChangePercent: -0.2}},
				{Instrument: models.Instrument{Symbol: "AED", Name: "UAE Dirham", Price: 136000}},
			},
			Crypto:     []models.MCryptoInstrument{},
			CapturedAt: time.Date(2024, 11, 2, 11, 0, 0, 0, time.UTC),
		},
		LastSuccess: time.Date(2024, 11, 2, 11, 0, 0, 0, time.UTC),
	}
}

// startControl serves the service over an in-memory listener.
func startControl(t *testing.T, provider *MockIStateProvider) ControlClient {
	t.Helper()

	f, err := format.NewFormatter("en-US")
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := NewServer("bufnet", 0, NewControlService(provider, f, logger.Discard()), logger.Discard())
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewControlClient(conn)
}

func TestControl_GetState(t *testing.T) {
	provider := NewMockIStateProvider(gomock.NewController(t))
	provider.EXPECT().State().Return(fixtureState())
	client := startControl(t, provider)

	out, err := client.GetState(t.Context(), &emptypb.Empty{})
	require.NoError(t, err)

	m := out.AsMap()
	assert.Equal(t, "ready", m["status"])
	assert.Equal(t, map[string]any{"gold": 1.0, "currency": 2.0, "cryptocurrency": 0.0}, m["counts"])
	assert.Equal(t, "2024-11-02T11:00:00Z", m["last_success"])
}

func TestControl_Refresh(t *testing.T) {
	provider := NewMockIStateProvider(gomock.NewController(t))
	gomock.InOrder(
		provider.EXPECT().RefreshNow().Return(nil),
		provider.EXPECT().RefreshNow().Return(errors.New("poller: not started")),
	)
	client := startControl(t, provider)

	_, err := client.Refresh(t.Context(), &emptypb.Empty{})
	require.NoError(t, err)

	_, err = client.Refresh(t.Context(), &emptypb.Empty{})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "not started")
}

func TestControl_Filter(t *testing.T) {
	provider := NewMockIStateProvider(gomock.NewController(t))
	provider.EXPECT().State().Return(fixtureState()).AnyTimes()
	client := startControl(t, provider)

	req, err := structpb.NewStruct(map[string]any{"category": "currency", "q": "usd"})
	require.NoError(t, err)

	out, err := client.Filter(t.Context(), req)
	require.NoError(t, err)

	items := out.AsSlice()
	require.Len(t, items, 1)
	usd := items[0].(map[string]any)
	assert.Equal(t, "USD", usd["symbol"])
	assert.Equal(t, "500,000", usd["price_text"])
	assert.Equal(t, "up", usd["change_direction"])
	assert.Equal(t, "down", usd["percent_direction"])
}

func TestControl_FilterEdgeCases(t *testing.T) {
	provider := NewMockIStateProvider(gomock.NewController(t))
	provider.EXPECT().State().Return(fixtureState()).AnyTimes()
	client := startControl(t, provider)

	unknown, err := structpb.NewStruct(map[string]any{"category": "stocks"})
	require.NoError(t, err)
	out, err := client.Filter(t.Context(), unknown)
	require.NoError(t, err)
	assert.Empty(t, out.GetValues())

	all, err := structpb.NewStruct(map[string]any{"category": "gold", "q": "  "})
	require.NoError(t, err)
	out, err = client.Filter(t.Context(), all)
	require.NoError(t, err)
	assert.Len(t, out.GetValues(), 1)

	_, err = client.Filter(t.Context(), &structpb.Struct{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
