package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/store"
)

const defaultPingTimeout = 2 * time.Second

type healthService struct {
	pinger      store.Pinger
	pingTimeout time.Duration

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger:      pinger,
		pingTimeout: defaultPingTimeout,
		logger:      logger,
	}
}

// Check pings the database. A nil pinger means the service runs without
// storage and is always healthy.
func (h *healthService) Check(ctx context.Context) error {
	if h.pinger == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.pingTimeout)
	defer cancel()

	if err := h.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return nil
}
