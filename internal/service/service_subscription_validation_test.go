package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-newsletter/internal/validators"
	"github.com/MKhiriev/go-newsletter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerService struct {
	subscribeFn func(ctx context.Context, form models.SubscriptionForm) (models.Subscription, error)
	calls       int
}

func (m *mockInnerService) Subscribe(ctx context.Context, form models.SubscriptionForm) (models.Subscription, error) {
	m.calls++
	if m.subscribeFn != nil {
		return m.subscribeFn(ctx, form)
	}
	return models.Subscription{Email: form.Email, Name: form.Name}, nil
}

type mockValidator struct {
	validateFn func(ctx context.Context, i any, fields ...string) error
}

func (m *mockValidator) Validate(ctx context.Context, i any, fields ...string) error {
	if m.validateFn != nil {
		return m.validateFn(ctx, i, fields...)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newValidationService(inner SubscriptionService, v validators.Validator) *subscriptionValidationService {
	return &subscriptionValidationService{
		inner:     inner,
		validator: v,
	}
}

func validForm() models.SubscriptionForm {
	return models.SubscriptionForm{Name: "le guin", Email: "ursula_le_guin@gmail.com"}
}

// ─────────────────────────────────────────────
// Subscribe
// ─────────────────────────────────────────────

func TestValidationService_Subscribe_ValidFormPassesThrough(t *testing.T) {
	inner := &mockInnerService{}
	svc := newValidationService(inner, &mockValidator{})

	got, err := svc.Subscribe(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, "ursula_le_guin@gmail.com", got.Email)
}

func TestValidationService_Subscribe_InvalidFormStopsChain(t *testing.T) {
	inner := &mockInnerService{}
	cause := errors.New("bad email")
	svc := newValidationService(inner, &mockValidator{
		validateFn: func(ctx context.Context, i any, fields ...string) error { return cause },
	})

	_, err := svc.Subscribe(context.Background(), validForm())

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, inner.calls)
}

func TestValidationService_Subscribe_InnerErrorPropagates(t *testing.T) {
	innerErr := errors.New("db down")
	inner := &mockInnerService{
		subscribeFn: func(ctx context.Context, form models.SubscriptionForm) (models.Subscription, error) {
			return models.Subscription{}, innerErr
		},
	}
	svc := newValidationService(inner, &mockValidator{})

	_, err := svc.Subscribe(context.Background(), validForm())

	require.ErrorIs(t, err, innerErr)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

func TestValidationService_Subscribe_RealValidator(t *testing.T) {
	tests := []struct {
		name    string
		form    models.SubscriptionForm
		wantErr error
	}{
		{name: "missing the email", form: models.SubscriptionForm{Name: "le guin"}, wantErr: validators.ErrEmptyEmail},
		{name: "missing the name", form: models.SubscriptionForm{Email: "ursula_le_guin@gmail.com"}, wantErr: validators.ErrEmptyName},
		{name: "missing both name and email", form: models.SubscriptionForm{}, wantErr: validators.ErrEmptyName},
		{name: "invalid email", form: models.SubscriptionForm{Name: "le guin", Email: "le guin"}, wantErr: validators.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerService{}
			svc := NewSubscriptionValidationService().Wrap(inner)

			_, err := svc.Subscribe(context.Background(), tt.form)

			require.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, inner.calls)
		})
	}
}

func TestNewSubscriptionValidationService_Wrap(t *testing.T) {
	inner := &mockInnerService{}
	wrapped := NewSubscriptionValidationService().Wrap(inner)

	require.NotNil(t, wrapped)
	_, err := wrapped.Subscribe(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}
