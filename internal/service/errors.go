package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrAlreadySubscribed     = errors.New("email is already subscribed")
	ErrDatabaseUnavailable   = errors.New("database is unavailable")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
