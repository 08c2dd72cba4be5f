// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the go-tube
// server: typed context keys, HMAC and webhook signature verification,
// session token parsing, JSON responses, the outbound HTTP client, object
// key generation and presentation formatting.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user's id (uuid string) in the
// request context. It is set by the authentication middleware.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user's id. ok is false when
// the request is anonymous.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	if userID == "" {
		return "", false
	}
	return userID, ok
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
