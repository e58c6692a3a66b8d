// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/models"
	"github.com/jackc/pgerrcode"
	"github.com/sethvargo/go-retry"
)

const (
	defaultMaxRetries = 3
	defaultRetryBase  = 50 * time.Millisecond
)

// subscriptionRepository is the PostgreSQL-backed implementation of
// [SubscriptionRepository]. It works against the "subscriptions" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type subscriptionRepository struct {
	db     *DB
	logger *logger.Logger

	// maxRetries and retryBase drive the exponential backoff applied to
	// errors the classifier reports as [Retryable].
	maxRetries uint64
	retryBase  time.Duration
}

// NewSubscriptionRepository constructs a [SubscriptionRepository] backed by
// the provided database connection and logger.
func NewSubscriptionRepository(db *DB, logger *logger.Logger) SubscriptionRepository {
	logger.Debug().Msg("creating subscription repository")
	return &subscriptionRepository{
		db:         db,
		logger:     logger,
		maxRetries: defaultMaxRetries,
		retryBase:  defaultRetryBase,
	}
}

// CreateSubscription persists s and returns the row as stored by the
// database (RETURNING clause).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSubscriptionAlreadyExists].
//   - Retryable driver errors are retried with exponential backoff; once
//     exhausted they are wrapped in [ErrExecutingQuery] like any other
//     driver-level error.
//   - Scan failure → wrapped in [ErrScanningRow].
func (r *subscriptionRepository) CreateSubscription(ctx context.Context, s models.Subscription) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSubscriptionQuery(s)
	if err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.CreateSubscription").Msg("failed to build query")
		return models.Subscription{}, err
	}

	var saved models.Subscription
	err = r.withRetry(ctx, func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return err
		}
		if err := row.Scan(&saved.ID, &saved.Email, &saved.Name, &saved.SubscribedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*subscriptionRepository.CreateSubscription").
			Str("subscription_id", s.ID.String()).
			Msg("error saving subscription")

		switch {
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.Subscription{}, ErrSubscriptionAlreadyExists
		case errors.Is(err, ErrScanningRow):
			return models.Subscription{}, err
		default:
			return models.Subscription{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	log.Debug().Str("subscription_id", saved.ID.String()).Msg("subscription saved")
	return saved, nil
}

// FindSubscriptionByEmail retrieves the subscription registered for email.
//
// Error handling:
//   - empty result set → [ErrSubscriptionNotFound].
//   - any other driver-level error → wrapped in [ErrExecutingQuery].
func (r *subscriptionRepository) FindSubscriptionByEmail(ctx context.Context, email string) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSubscriptionByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.FindSubscriptionByEmail").Msg("failed to build query")
		return models.Subscription{}, err
	}

	var found models.Subscription
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&found.ID, &found.Email, &found.Name, &found.SubscribedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Subscription{}, ErrSubscriptionNotFound
		}
		log.Err(err).Str("func", "*subscriptionRepository.FindSubscriptionByEmail").Msg("error finding subscription")
		return models.Subscription{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// withRetry runs fn, repeating it while the error classifier reports the
// failure as [Retryable] and the retry budget is not exhausted.
func (r *subscriptionRepository) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(r.maxRetries, retry.NewExponential(r.retryBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")
			return retry.RetryableError(err)
		}
		return err
	})
}
