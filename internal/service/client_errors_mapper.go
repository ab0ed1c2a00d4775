// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-sync/internal/adapter"
)

// operation selects how adapter errors are classified, since the same
// transport failure means different things to login and to a fetch.
type operation int

const (
	opAuth operation = iota
	opCheck
	opSend
	opFetch
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain so callers can still
// see the server's message.
func mapAdapterError(op operation, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrNetwork) {
		return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	switch op {
	case opAuth:
		switch {
		case errors.Is(err, adapter.ErrUnauthorized),
			errors.Is(err, adapter.ErrForbidden),
			errors.Is(err, adapter.ErrBadRequest),
			errors.Is(err, adapter.ErrNotFound),
			errors.Is(err, adapter.ErrConflict),
			errors.Is(err, adapter.ErrUnsuccessful):
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return fmt.Errorf("%w: %w", ErrNetworkFailure, err)

	case opCheck:
		switch {
		case errors.Is(err, adapter.ErrUnauthorized),
			errors.Is(err, adapter.ErrForbidden),
			errors.Is(err, adapter.ErrNotFound),
			errors.Is(err, adapter.ErrUnsuccessful):
			return fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return fmt.Errorf("%w: %w", ErrNetworkFailure, err)

	case opSend:
		switch {
		case errors.Is(err, adapter.ErrUnauthorized):
			return fmt.Errorf("%w: %w", ErrTokenExpired, err)
		case errors.Is(err, adapter.ErrInternalServerError),
			errors.Is(err, adapter.ErrBadGateway):
			return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
		}
		return fmt.Errorf("%w: %w", ErrServerRejected, err)

	default:
		if errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return fmt.Errorf("%w: %w", ErrServerError, err)
	}
}
