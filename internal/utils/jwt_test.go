// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		token, err := GenerateJWTToken("test-issuer", "user_123", time.Hour, "secret-key")

		require.NoError(t, err)
		assert.NotEmpty(t, token.SignedString)
		assert.Equal(t, "user_123", token.ClerkID)

		claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
		require.True(t, ok)
		assert.Equal(t, "test-issuer", claims.Issuer)
		assert.Equal(t, "user_123", claims.Subject)
	})

	tests := []struct {
		name     string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty subject", "", time.Hour, "key"},
		{"zero duration", "user", 0, "key"},
		{"empty key", "user", time.Hour, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken("iss", tt.subject, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken("test-issuer", "user_456", 5*time.Minute, "secret-key")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		parsed, err := ValidateAndParseJWTToken(valid.SignedString, "secret-key", "test-issuer")

		require.NoError(t, err)
		assert.Equal(t, "user_456", parsed.ClerkID)
		assert.Equal(t, valid.SignedString, parsed.String())
	})

	t.Run("issuer not checked when empty", func(t *testing.T) {
		parsed, err := ValidateAndParseJWTToken(valid.SignedString, "secret-key", "")

		require.NoError(t, err)
		assert.Equal(t, "user_456", parsed.ClerkID)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(valid.SignedString, "wrong-key", "test-issuer")
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(valid.SignedString, "secret-key", "fake-issuer")
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := GenerateJWTToken("test-issuer", "user_1", -time.Second, "key")
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(expired.SignedString, "key", "test-issuer")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
		assert.Error(t, err)
	})

	t.Run("empty subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(s, "key", "")
		assert.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer token", want: "token"},
		{name: "surrounding spaces", header: "  Bearer token  ", want: "token"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
		{name: "empty", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
