package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-newsletter/models"
)

const subscriptionsTable = "subscriptions"

var subscriptionColumns = []string{"id", "email", "name", "subscribed_at"}

// psql is a statement builder emitting PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCreateSubscriptionQuery builds an INSERT of s that returns the stored
// row.
func buildCreateSubscriptionQuery(s models.Subscription) (string, []any, error) {
	query, args, err := psql.
		Insert(subscriptionsTable).
		Columns(subscriptionColumns...).
		Values(s.ID, s.Email, s.Name, s.SubscribedAt).
		Suffix("RETURNING id, email, name, subscribed_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindSubscriptionByEmailQuery builds a SELECT of the subscription
// registered for email.
func buildFindSubscriptionByEmailQuery(email string) (string, []any, error) {
	query, args, err := psql.
		Select(subscriptionColumns...).
		From(subscriptionsTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
