package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-newsletter/models"
)

// SubscriptionRepository persists newsletter subscriptions.
type SubscriptionRepository interface {
	// CreateSubscription inserts s and returns the row as stored.
	CreateSubscription(ctx context.Context, s models.Subscription) (models.Subscription, error)
	// FindSubscriptionByEmail returns the subscription registered for email.
	FindSubscriptionByEmail(ctx context.Context, email string) (models.Subscription, error)
}

// Pinger reports whether the underlying database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
