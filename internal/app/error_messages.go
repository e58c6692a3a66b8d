// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// newsletter HTTP handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies to describe why a request failed. Keeping them in one
// place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidForm is returned when the request body cannot be decoded as
	// an urlencoded form.
	MsgInvalidForm = "invalid form was passed"

	// MsgInvalidDataProvided is returned when the form is well-formed but a
	// field is missing or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgAlreadySubscribed is returned when the email already has a
	// subscription.
	MsgAlreadySubscribed = "email is already subscribed"

	// MsgDatabaseUnavailable is returned when the database cannot be reached.
	MsgDatabaseUnavailable = "service temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
