package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrAuthDisabled            = errors.New("token auth is disabled")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Client-side errors. They carry the text shown in the panel toast.
var (
	ErrServerUnavailable = errors.New("server unavailable")
	ErrConfigNotFound    = errors.New("config not found")
	ErrConfigConflict    = errors.New("config conflicts with an existing one")
	ErrRequestRejected   = errors.New("request rejected by server")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUnexpectedServer  = errors.New("unexpected server error")
)
