package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when a token is not a parseable JWT. Opaque tokens
// are legal; their expiry is decided by the server.
var ErrNotJWT = errors.New("token is not a JWT")

// TokenExpiry reads the exp claim of tokenString without verifying its
// signature. The client never holds the signing key, so the result is only a
// hint used to skip a round trip for tokens that are already expired.
//
// ok is false when the token carries no exp claim.
func TokenExpiry(tokenString string) (expiresAt time.Time, ok bool, err error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, false, nil
	}

	return exp.Time, true, nil
}

// IsTokenExpired reports whether tokenString is a JWT whose exp claim is not
// after now. Tokens without a readable exp claim are never reported expired.
func IsTokenExpired(tokenString string, now time.Time) bool {
	expiresAt, ok, err := TokenExpiry(tokenString)
	if err != nil || !ok {
		return false
	}

	return !now.Before(expiresAt)
}
