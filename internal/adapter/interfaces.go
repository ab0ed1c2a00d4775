// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the chat server's HTTP API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNetwork] when no response was
// received at all).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the chat
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set.
	Token() string

	// Authenticate posts credentials to the signup or login endpoint selected
	// by mode. On success it stores the returned token via SetToken and
	// returns the full response. A response with success=false is reported
	// as [ErrUnsuccessful].
	Authenticate(ctx context.Context, mode models.AuthMode, creds models.Credentials) (models.AuthResponse, error)

	// CheckAuth validates the stored token and returns the user it belongs to.
	CheckAuth(ctx context.Context) (models.User, error)

	// UpdateProfile sends the non-nil fields of update and returns the
	// server-confirmed user.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// GetUsers returns the peers of the authenticated user together with the
	// authoritative unseen counters.
	GetUsers(ctx context.Context) (models.PeerList, error)

	// GetMessages returns the full conversation with peerID in server order.
	GetMessages(ctx context.Context, peerID string) ([]models.Message, error)

	// MarkSeen acknowledges that messageID has been viewed.
	MarkSeen(ctx context.Context, messageID string) error

	// SendMessage persists a message to peerID and returns the stored copy.
	// A response carrying an error field is reported as [ErrUnsuccessful].
	SendMessage(ctx context.Context, peerID string, req models.SendMessageRequest) (models.Message, error)
}
