// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the newsletter HTTP API.
//
// [NewsletterAdapter] hides the wire format (paths, form encoding, status
// codes) from callers. Non-2xx responses are mapped by mapHTTPError to the
// sentinel errors in errors.go, so callers can use [errors.Is] (e.g.
// [ErrAlreadySubscribed] for 409).
package adapter

import (
	"context"
)

// NewsletterAdapter talks to a running newsletter server.
type NewsletterAdapter interface {
	// HealthCheck calls GET /health_check and succeeds on 200.
	HealthCheck(ctx context.Context) error

	// Subscribe posts name and email as a form to POST /subscriptions.
	Subscribe(ctx context.Context, name, email string) error

	// Version returns the body of GET /api/version.
	Version(ctx context.Context) (string, error)
}
