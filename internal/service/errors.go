package service

import "errors"

var (
	// auth
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token is expired or invalid")
	ErrNoStoredSession    = errors.New("no stored session")
	ErrNoActiveSession    = errors.New("no active session")

	// shared by auth, send and fetch
	ErrNetworkFailure = errors.New("network failure")

	// send
	ErrValidationFailed = errors.New("validation failed")
	ErrServerRejected   = errors.New("server rejected the request")

	// fetch
	ErrServerError = errors.New("server error")

	// ErrStaleResponse is returned by LoadHistory when the selection changed
	// while the fetch was in flight. The result was dropped.
	ErrStaleResponse = errors.New("stale response dropped")
)
