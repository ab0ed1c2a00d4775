// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// AuthMode selects the authentication endpoint used by a login attempt.
type AuthMode string

const (
	// AuthModeSignup creates a new account and authenticates it.
	AuthModeSignup AuthMode = "signup"
	// AuthModeLogin authenticates an existing account.
	AuthModeLogin AuthMode = "login"
)

// Valid reports whether m is one of the known authentication modes.
func (m AuthMode) Valid() bool {
	return m == AuthModeSignup || m == AuthModeLogin
}

// Session is the authenticated identity of the running client. A zero Session
// means "logged out".
type Session struct {
	// UserID is the identifier of the authenticated user.
	UserID string

	// Token is the bearer token attached to authenticated requests and to
	// the realtime handshake.
	Token string

	// User is the last server-confirmed profile snapshot.
	User User
}

// Active reports whether the session carries both an identity and a token.
func (s Session) Active() bool {
	return s.UserID != "" && s.Token != ""
}

// Credentials are the fields submitted to the signup and login endpoints.
type Credentials struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
}

// Credential validation errors.
var (
	ErrCredentialsNoEmail    = errors.New("email is required")
	ErrCredentialsNoPassword = errors.New("password is required")
	ErrCredentialsNoFullName = errors.New("full name is required for signup")
	ErrUnknownAuthMode       = errors.New("unknown auth mode")
)

// Validate checks that every field required by mode is present.
// Signup needs a full name in addition to email and password.
func (c Credentials) Validate(mode AuthMode) error {
	if !mode.Valid() {
		return ErrUnknownAuthMode
	}

	var errs []error
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, ErrCredentialsNoEmail)
	}
	if c.Password == "" {
		errs = append(errs, ErrCredentialsNoPassword)
	}
	if mode == AuthModeSignup && strings.TrimSpace(c.FullName) == "" {
		errs = append(errs, ErrCredentialsNoFullName)
	}

	return errors.Join(errs...)
}
