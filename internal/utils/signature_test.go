// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyMuxSignature(t *testing.T) {
	const secret = "mux-secret"
	body := []byte(`{"type":"video.asset.ready"}`)
	now := time.Unix(1_700_000_000, 0)
	ts := strconv.FormatInt(now.Unix(), 10)
	valid := HashString(ts+"."+string(body), secret)

	tests := []struct {
		name    string
		header  string
		now     time.Time
		wantErr error
	}{
		{name: "valid", header: "t=" + ts + ",v1=" + valid, now: now},
		{name: "second signature matches", header: "t=" + ts + ",v1=deadbeef,v1=" + valid, now: now},
		{name: "within tolerance", header: "t=" + ts + ",v1=" + valid, now: now.Add(4 * time.Minute)},
		{name: "too old", header: "t=" + ts + ",v1=" + valid, now: now.Add(6 * time.Minute), wantErr: ErrSignatureExpired},
		{name: "from the future", header: "t=" + ts + ",v1=" + valid, now: now.Add(-6 * time.Minute), wantErr: ErrSignatureExpired},
		{name: "wrong signature", header: "t=" + ts + ",v1=" + HashString("x", secret), now: now, wantErr: ErrInvalidSignature},
		{name: "no timestamp", header: "v1=" + valid, now: now, wantErr: ErrMalformedSignature},
		{name: "no signature", header: "t=" + ts, now: now, wantErr: ErrMalformedSignature},
		{name: "garbage", header: "nonsense", now: now, wantErr: ErrMalformedSignature},
		{name: "non numeric timestamp", header: "t=abc,v1=" + valid, now: now, wantErr: ErrMalformedSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyMuxSignature(tt.header, body, secret, tt.now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func signUpstash(t *testing.T, key, sub, bodyDigest string, exp time.Time) string {
	t.Helper()
	claims := upstashClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "Upstash",
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
			NotBefore: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Body: bodyDigest,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestVerifyUpstashSignature(t *testing.T) {
	const url = "https://tube.example.com/api/videos/workflows/title"
	body := []byte(`{"userId":"u","videoId":"v"}`)
	digest := SHA256Base64URL(body)
	exp := time.Now().Add(5 * time.Minute)

	t.Run("current key", func(t *testing.T) {
		token := signUpstash(t, "current", url, digest, exp)
		require.NoError(t, VerifyUpstashSignature(token, body, url, "current", "next"))
	})

	t.Run("next key after rotation", func(t *testing.T) {
		token := signUpstash(t, "next", url, digest, exp)
		require.NoError(t, VerifyUpstashSignature(token, body, url, "current", "next"))
	})

	t.Run("padded digest", func(t *testing.T) {
		token := signUpstash(t, "current", url, digest+"=", exp)
		require.NoError(t, VerifyUpstashSignature(token, body, url, "current"))
	})

	t.Run("unknown key", func(t *testing.T) {
		token := signUpstash(t, "other", url, digest, exp)
		assert.ErrorIs(t, VerifyUpstashSignature(token, body, url, "current", "next"), ErrInvalidSignature)
	})

	t.Run("wrong subject", func(t *testing.T) {
		token := signUpstash(t, "current", "https://evil.example.com", digest, exp)
		assert.ErrorIs(t, VerifyUpstashSignature(token, body, url, "current"), ErrInvalidSignature)
	})

	t.Run("body changed", func(t *testing.T) {
		token := signUpstash(t, "current", url, digest, exp)
		assert.ErrorIs(t, VerifyUpstashSignature(token, []byte(`{}`), url, "current"), ErrInvalidSignature)
	})

	t.Run("expired", func(t *testing.T) {
		token := signUpstash(t, "current", url, digest, time.Now().Add(-time.Hour))
		assert.ErrorIs(t, VerifyUpstashSignature(token, body, url, "current"), ErrInvalidSignature)
	})

	t.Run("empty token", func(t *testing.T) {
		assert.ErrorIs(t, VerifyUpstashSignature("", body, url, "current"), ErrMalformedSignature)
	})
}
