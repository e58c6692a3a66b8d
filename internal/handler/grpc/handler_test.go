package grpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/mock"
	"github.com/MKhiriev/go-newsletter/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// startHealthServer serves h over an in-memory listener and returns a
// connected health client.
func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLoggingInterceptor))
	healthpb.RegisterHealthServer(srv, h)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func newHandlerWithHealth(t *testing.T, healthErr error) *Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	health := mock.NewMockHealthService(ctrl)
	health.EXPECT().Check(gomock.Any()).Return(healthErr).AnyTimes()

	return NewHandler(&service.Services{HealthService: health}, logger.Nop())
}

func TestCheck_Serving(t *testing.T) {
	client := startHealthServer(t, newHandlerWithHealth(t, nil))

	for _, name := range []string{"", ServiceName} {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}

func TestCheck_NotServingWhenDatabaseIsDown(t *testing.T) {
	client := startHealthServer(t, newHandlerWithHealth(t, service.ErrDatabaseUnavailable))

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestCheck_UnknownService(t *testing.T) {
	client := startHealthServer(t, newHandlerWithHealth(t, nil))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "billing.Billing"})

	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestCheck_Direct(t *testing.T) {
	h := newHandlerWithHealth(t, errors.New("connection refused"))

	resp, err := h.Check(context.Background(), &healthpb.HealthCheckRequest{})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestUnaryLoggingInterceptor_PropagatesTraceID(t *testing.T) {
	var buf bytes.Buffer
	ctrl := gomock.NewController(t)
	health := mock.NewMockHealthService(ctrl)
	health.EXPECT().Check(gomock.Any()).Return(nil)

	h := NewHandler(&service.Services{HealthService: health}, logger.New(&buf, "test", "info"))
	client := startHealthServer(t, h)

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDMetadataKey, "grpc-trace-id")
	var header metadata.MD
	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{}, grpc.Header(&header))
	require.NoError(t, err)

	assert.Equal(t, []string{"grpc-trace-id"}, header.Get(traceIDMetadataKey))
	assert.Contains(t, buf.String(), `"trace_id":"grpc-trace-id"`)
	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"OK"`)
}
