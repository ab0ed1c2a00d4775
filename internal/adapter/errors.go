package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNetwork means the request never produced an HTTP response
	// (connection refused, timeout, cancelled context).
	ErrNetwork = errors.New("network failure")

	// ErrUnsuccessful means the server answered 2xx but reported
	// success=false or an error field in the body.
	ErrUnsuccessful = errors.New("server reported failure")
)
