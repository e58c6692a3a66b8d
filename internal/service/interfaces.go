package service

import (
	"context"

	"github.com/MKhiriev/go-newsletter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service.go -package=mock

// SubscriptionService registers newsletter subscribers.
type SubscriptionService interface {
	Subscribe(ctx context.Context, form models.SubscriptionForm) (models.Subscription, error)
}

// HealthService reports whether the service can serve requests.
type HealthService interface {
	Check(ctx context.Context) error
}

// AppInfoService exposes build metadata of the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SubscriptionServiceWrapper defines middleware composition for SubscriptionService.
// Implementations wrap an existing SubscriptionService to add behavior such as
// logging or validating.
type SubscriptionServiceWrapper interface {
	Wrap(SubscriptionService) SubscriptionService // returns a decorated SubscriptionService applying additional behavior
}
