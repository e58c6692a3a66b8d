package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/store"
	"github.com/MKhiriev/go-newsletter/internal/utils"
	"github.com/MKhiriev/go-newsletter/models"
	"github.com/google/uuid"
)

type subscriptionService struct {
	subscriptionRepository store.SubscriptionRepository

	generateID func() uuid.UUID
	now        func() time.Time

	logger *logger.Logger
}

func NewSubscriptionService(subscriptionRepository store.SubscriptionRepository, logger *logger.Logger) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		generateID:             utils.NewUUIDGenerator().Generate,
		now:                    time.Now,
		logger:                 logger,
	}
}

// Subscribe stores a new subscription built from form. Name and email are
// trimmed; the id is a fresh v4 UUID and the timestamp is taken in UTC.
//
// A duplicate email is reported as ErrAlreadySubscribed.
func (s *subscriptionService) Subscribe(ctx context.Context, form models.SubscriptionForm) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	subscription := models.Subscription{
		ID:           s.generateID(),
		Email:        strings.TrimSpace(form.Email),
		Name:         strings.TrimSpace(form.Name),
		SubscribedAt: s.now().UTC(),
	}

	log.Debug().Str("subscription_id", subscription.ID.String()).Msg("adding a new subscriber")

	saved, err := s.subscriptionRepository.CreateSubscription(ctx, subscription)
	if err != nil {
		if errors.Is(err, store.ErrSubscriptionAlreadyExists) {
			return models.Subscription{}, fmt.Errorf("%w: %w", ErrAlreadySubscribed, err)
		}
		log.Err(err).Str("func", "*subscriptionService.Subscribe").Msg("failed to save new subscriber details")
		return models.Subscription{}, fmt.Errorf("error saving subscription: %w", err)
	}

	log.Info().Str("subscription_id", saved.ID.String()).Msg("new subscriber details have been saved")
	return saved, nil
}
