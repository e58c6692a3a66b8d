package service

import (
	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/store"
)

type Services struct {
	SubscriptionService SubscriptionService
	HealthService       HealthService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	subscriptionService := NewSubscriptionValidationService().
		Wrap(NewSubscriptionService(storages.SubscriptionRepository, logger))

	var pinger store.Pinger
	if storages.DB != nil {
		pinger = storages.DB
	}

	return &Services{
		SubscriptionService: subscriptionService,
		HealthService:       NewHealthService(pinger, logger),
		AppInfoService:      appInfoService,
	}, nil
}
