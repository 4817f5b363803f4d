package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrRejected is returned when a 2xx response reports "success": false.
	ErrRejected = errors.New("request rejected by server")

	// ErrServerUnavailable wraps transport failures: refused connections,
	// timeouts, DNS errors.
	ErrServerUnavailable = errors.New("server unavailable")

	ErrInvalidAddress = errors.New("invalid adapter http address")
	ErrDecodeResponse = errors.New("error decoding response")
)
