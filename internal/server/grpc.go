package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/config"
	myGRPC "github.com/MKhiriev/go-newsletter/internal/handler/grpc"
	"github.com/MKhiriev/go-newsletter/internal/logger"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	shutdownTimeout time.Duration

	logger *logger.Logger
}

var _ transport = (*grpcServer)(nil)

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on gRPC address %q: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor))
	healthpb.RegisterHealthServer(server, handler)
	reflection.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server is listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting calls and waits for pending ones; after the
// shutdown timeout the remaining calls are cancelled.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	if g.shutdownTimeout <= 0 {
		<-done
	} else {
		timer := time.NewTimer(g.shutdownTimeout)
		defer timer.Stop()

		select {
		case <-done:
		case <-timer.C:
			g.logger.Warn().Msg("gRPC graceful stop timed out, forcing stop")
			g.server.Stop()
			<-done
		}
	}
	_ = g.gRPCNetListener.Close()
}

func (g *grpcServer) addr() net.Addr {
	return g.gRPCNetListener.Addr()
}

func (g *grpcServer) name() string {
	return "grpc"
}
