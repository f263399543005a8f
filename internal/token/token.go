// Package token reads the claims of the backend's bearer token for display.
//
// The console never holds the signing secret, so claims are parsed without
// verification. Nothing here is used for access decisions; the backend
// verifies the token on every request.
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the backend puts into its HS256 token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Info is the parsed, display-ready view of a token.
type Info struct {
	Raw      string
	Username string
	Role     string
	Expiry   time.Time
}

// Parse extracts username, role, and expiry from a JWT without verifying
// its signature. Opaque (non-JWT) tokens return an error and a zero Info
// carrying only Raw.
func Parse(raw string) (Info, error) {
	info := Info{Raw: strings.TrimSpace(raw)}
	if info.Raw == "" {
		return info, fmt.Errorf("empty token")
	}

	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(info.Raw, &claims); err != nil {
		return info, fmt.Errorf("parse token: %w", err)
	}

	info.Username = claims.Username
	info.Role = claims.Role
	if claims.ExpiresAt != nil {
		info.Expiry = claims.ExpiresAt.Time
	}
	return info, nil
}

// IsExpired reports whether the token's expiry time has passed.
// A zero expiry (unparsed or absent) is treated as not expired.
func (i Info) IsExpired() bool {
	return i.ExpiredAt(time.Now())
}

// ExpiredAt reports whether the token is expired at t.
func (i Info) ExpiredAt(t time.Time) bool {
	if i.Expiry.IsZero() {
		return false
	}
	return t.After(i.Expiry)
}

// Remaining returns the time left before expiry, or 0 if expired or unknown.
func (i Info) Remaining() time.Duration {
	if i.Expiry.IsZero() {
		return 0
	}
	d := time.Until(i.Expiry)
	if d < 0 {
		return 0
	}
	return d
}

// Issue signs a token the way the backend does (HS256, username, role,
// exp). It exists for the in-process fake backend and tests.
func Issue(secret []byte, username, role string, ttl time.Duration) (string, error) {
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks an HS256 token against secret and returns its claims.
// Used by the fake backend to authenticate requests.
func Verify(secret []byte, raw string) (*Claims, error) {
	var claims Claims
	_, err := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})).
		ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) { return secret, nil })
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	return &claims, nil
}
