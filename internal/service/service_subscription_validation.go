package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/validators"
	"github.com/MKhiriev/go-newsletter/models"
)

type subscriptionValidationService struct {
	inner     SubscriptionService
	validator validators.Validator
}

func NewSubscriptionValidationService() SubscriptionServiceWrapper {
	return &subscriptionValidationService{
		validator: validators.NewSubscriptionValidator(),
	}
}

// Subscribe rejects forms with a missing or malformed name or email before
// they reach the wrapped service.
func (v *subscriptionValidationService) Subscribe(ctx context.Context, form models.SubscriptionForm) (models.Subscription, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("subscription form rejected")
		return models.Subscription{}, errors.Join(ErrInvalidDataProvided, err)
	}

	return v.inner.Subscribe(ctx, form)
}

func (v *subscriptionValidationService) Wrap(wrapper SubscriptionService) SubscriptionService {
	v.inner = wrapper
	return v
}
