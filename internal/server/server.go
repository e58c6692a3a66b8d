package server

import (
	"context"
	"net"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/handler"
	"github.com/MKhiriev/go-newsletter/internal/logger"
)

// Servers runs every configured transport and stops them together.
type Servers struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownOnce sync.Once

	logger *logger.Logger
}

var _ Server = (*Servers)(nil)

// NewServer binds a listener for every transport that has both an address in
// cfg and a handler. Nothing is served until Run or RunServer is called.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*Servers, error) {
	logger.Info().Msg("creating new server...")
	servers := &Servers{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpServer, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpServer
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		gRPCServer, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.Shutdown()
			return nil, err
		}
		servers.gRPCServer = gRPCServer
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// HTTPAddr reports the address the HTTP server is bound to, or nil when HTTP
// is disabled.
func (s *Servers) HTTPAddr() net.Addr {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.addr()
}

// GRPCAddr reports the address the gRPC server is bound to, or nil when gRPC
// is disabled.
func (s *Servers) GRPCAddr() net.Addr {
	if s.gRPCServer == nil {
		return nil
	}
	return s.gRPCServer.addr()
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received.
func (s *Servers) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Run serves all transports and blocks until ctx is done or one of them
// fails. Either way every transport is shut down before Run returns; the
// first serving error, if any, is returned.
func (s *Servers) Run(ctx context.Context) error {
	transports := s.transports()
	if len(transports) == 0 {
		return errNoServersAreCreated
	}

	errs := make(chan error, len(transports))
	for _, t := range transports {
		s.logger.Info().Str("transport", t.name()).Msg("launching server")
		go func() {
			errs <- t.serve()
		}()
	}

	var runErr error
	pending := len(transports)

	select {
	case <-ctx.Done():
	case runErr = <-errs:
		pending--
	}

	s.Shutdown()

	for ; pending > 0; pending-- {
		if err := <-errs; err != nil && runErr == nil {
			runErr = err
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

// Shutdown stops every transport. It is safe to call more than once.
func (s *Servers) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, t := range s.transports() {
			t.Shutdown()
		}
	})
}

func (s *Servers) transports() []transport {
	var transports []transport
	if s.httpServer != nil {
		transports = append(transports, s.httpServer)
	}
	if s.gRPCServer != nil {
		transports = append(transports, s.gRPCServer)
	}
	return transports
}
