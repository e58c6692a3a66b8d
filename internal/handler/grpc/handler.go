package grpc

import (
	"context"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/service"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name under which the newsletter service reports its
// health, next to the empty name that stands for the whole server.
const ServiceName = "newsletter.Newsletter"

// Handler is the root gRPC transport handler.
//
// It implements the standard grpc.health.v1.Health service on top of
// [service.HealthService], so the reported status follows the database
// reachability. A handler instance is created once at startup and shared by
// the gRPC server.
type Handler struct {
	healthpb.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check answers SERVING while the database is reachable and NOT_SERVING
// otherwise. Unknown service names yield codes.NotFound as required by the
// health checking protocol.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", ServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}

	if err := h.services.HealthService.Check(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("health check failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
