// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a newsletter subscriber as persisted in the
// "subscriptions" table.
type Subscription struct {
	// ID is a random (version 4) UUID assigned by the service.
	ID uuid.UUID `json:"id"`

	// Email is the subscriber's address. It is unique across all
	// subscriptions.
	Email string `json:"email"`

	// Name is the subscriber's display name.
	Name string `json:"name"`

	// SubscribedAt is the UTC time the subscription was accepted.
	SubscribedAt time.Time `json:"subscribed_at"`
}

// TableName returns the name of the database table
// associated with the Subscription model.
func (s Subscription) TableName() string {
	return "subscriptions"
}

// SubscriptionForm is the payload of POST /subscriptions, sent as
// application/x-www-form-urlencoded.
type SubscriptionForm struct {
	Name  string `form:"name" validate:"required,text,max=256"`
	Email string `form:"email" validate:"required,text,email"`
}
