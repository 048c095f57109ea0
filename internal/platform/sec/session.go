// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives for session identity.
//
// # Architecture
//
// This package isolates security-sensitive code (token signing, key digests)
// from the composition logic. Widget state is owned by a session subject; the
// subject travels in a signed token so clients cannot read or overwrite the
// tabs and selections of another session.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/panelkit/pkg/uuid"
)

// SessionClaims represents the payload embedded inside a session token.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Session is the opaque subject that owns per-instance widget state.
	Session string `json:"sid"`
}

// SessionTokens issues and verifies HS256-signed session tokens.
type SessionTokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSessionTokens creates a new SessionTokens service.
func NewSessionTokens(secret, issuer string, ttl time.Duration) (*SessionTokens, error) {
	if secret == "" {
		return nil, errors.New("sec: session secret must not be empty")
	}
	return &SessionTokens{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// TTL returns the lifetime of newly issued tokens.
func (tokens *SessionTokens) TTL() time.Duration {
	return tokens.ttl
}

// Issue starts a new session and returns its subject and signed token.
func (tokens *SessionTokens) Issue() (session, token string, err error) {
	session = uuid.New()
	currentTime := time.Now()

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session,
			Issuer:    tokens.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(tokens.ttl)),
		},
		Session: session,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tokens.secret)
	if err != nil {
		return "", "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}

	return session, signed, nil
}

// Verify checks the signature, issuer and expiry of a session token and
// returns its subject.
func (tokens *SessionTokens) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return tokens.secret, nil
	}, jwt.WithIssuer(tokens.issuer))
	if err != nil {
		return "", fmt.Errorf("sec: invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Session == "" {
		return "", errors.New("sec: invalid session claims")
	}

	return claims.Session, nil
}
