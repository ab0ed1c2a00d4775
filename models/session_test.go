// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_Validate_Login(t *testing.T) {
	err := Credentials{Email: "a@b.c", Password: "secret"}.Validate(AuthModeLogin)
	require.NoError(t, err)

	// full name is not needed for login
	err = Credentials{Email: "a@b.c"}.Validate(AuthModeLogin)
	assert.ErrorIs(t, err, ErrCredentialsNoPassword)
	assert.NotErrorIs(t, err, ErrCredentialsNoFullName)
}

func TestCredentials_Validate_Signup(t *testing.T) {
	err := Credentials{Email: "a@b.c", Password: "secret"}.Validate(AuthModeSignup)
	assert.ErrorIs(t, err, ErrCredentialsNoFullName)

	err = Credentials{FullName: "Alice", Email: "a@b.c", Password: "secret"}.Validate(AuthModeSignup)
	assert.NoError(t, err)
}

func TestCredentials_Validate_CollectsAllMissing(t *testing.T) {
	err := Credentials{}.Validate(AuthModeSignup)

	assert.ErrorIs(t, err, ErrCredentialsNoEmail)
	assert.ErrorIs(t, err, ErrCredentialsNoPassword)
	assert.ErrorIs(t, err, ErrCredentialsNoFullName)
}

func TestCredentials_Validate_UnknownMode(t *testing.T) {
	err := Credentials{Email: "a", Password: "b"}.Validate(AuthMode("sso"))
	assert.ErrorIs(t, err, ErrUnknownAuthMode)
}

func TestSession_Active(t *testing.T) {
	assert.False(t, Session{}.Active())
	assert.False(t, Session{UserID: "u1"}.Active())
	assert.True(t, Session{UserID: "u1", Token: "t"}.Active())
}
