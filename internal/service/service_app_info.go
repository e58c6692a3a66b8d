package service

import (
	"context"

	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// ResolveAppVersion picks the version reported by /api/version: the
// configured one when set, otherwise the version injected at build time
// ("N/A" when none was).
func ResolveAppVersion(configured string, buildInfo models.AppBuildInfo) string {
	if configured != "" {
		return configured
	}
	return buildInfo.BuildVersion()
}
