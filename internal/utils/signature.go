// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignatureTolerance is how far a signed timestamp may drift from now.
const SignatureTolerance = 5 * time.Minute

const upstashIssuer = "Upstash"

var (
	ErrMalformedSignature = errors.New("malformed signature header")
	ErrInvalidSignature   = errors.New("signature mismatch")
	ErrSignatureExpired   = errors.New("signature timestamp outside tolerance")
)

// VerifyMuxSignature checks a video provider webhook. header has the form
// "t=<unix>,v1=<hex hmac>[,v1=...]" and the signed payload is "<t>.<body>".
func VerifyMuxSignature(header string, body []byte, secret string, now time.Time) error {
	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return ErrMalformedSignature
	}

	if err := checkTimestamp(timestamp, now); err != nil {
		return err
	}

	expected := HashString(timestamp+"."+string(body), secret)
	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}

	return ErrInvalidSignature
}

// upstashClaims is the payload of an Upstash-Signature token.
type upstashClaims struct {
	jwt.RegisteredClaims
	Body string `json:"body"`
}

// VerifyUpstashSignature checks the Upstash-Signature JWT of a workflow
// delivery against each signing key in turn. The token must be HS256, issued
// by Upstash, have url as subject and carry the body digest.
func VerifyUpstashSignature(token string, body []byte, url string, keys ...string) error {
	if token == "" {
		return ErrMalformedSignature
	}

	var errs []error
	for _, key := range keys {
		if key == "" {
			continue
		}
		err := verifyUpstashToken(token, body, url, key)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}

	return fmt.Errorf("%w: %w", ErrInvalidSignature, errors.Join(errs...))
}

func verifyUpstashToken(token string, body []byte, url string, key string) error {
	claims := &upstashClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(key), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(upstashIssuer),
		jwt.WithSubject(url),
		jwt.WithLeeway(time.Second),
	)
	if err != nil {
		return err
	}

	if strings.TrimRight(claims.Body, "=") != SHA256Base64URL(body) {
		return errors.New("body digest mismatch")
	}

	return nil
}

func checkTimestamp(timestamp string, now time.Time) error {
	unix, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrMalformedSignature
	}

	drift := now.Sub(time.Unix(unix, 0))
	if drift > SignatureTolerance || drift < -SignatureTolerance {
		return ErrSignatureExpired
	}

	return nil
}
