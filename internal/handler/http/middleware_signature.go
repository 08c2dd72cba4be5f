// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	svix "github.com/svix/svix-webhooks/go"

	"github.com/MKhiriev/go-tube/internal/adapter"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/models"
)

// maxCallbackBodySize bounds webhook and workflow deliveries.
const maxCallbackBodySize = 1 << 20

// Signature headers of the callers.
const (
	muxSignatureHeader     = "Mux-Signature"
	svixIDHeader           = "Svix-Id"
	svixTimestampHeader    = "Svix-Timestamp"
	svixSignatureHeader    = "Svix-Signature"
	upstashSignatureHeader = "Upstash-Signature"
)

// signatureVerifier checks the raw body of a callback against its headers.
type signatureVerifier func(r *http.Request, body []byte) error

// withSignature reads the request body, checks it with verify and restores
// it for the next handler. Signatures cover the exact bytes sent, so the body
// is verified before anything decodes it.
func (h *Handler) withSignature(name string, verify signatureVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r).With().
				Str("func", "*Handler.withSignature").
				Str("verifier", name).
				Logger()

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCallbackBodySize))
			if err != nil {
				log.Err(err).Msg("failed to read request body")
				http.Error(w, "Invalid body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err = verify(r, body); err != nil {
				status := statusFromError(err)
				log.Err(err).Int("status", status).Msg("signature check failed")
				http.Error(w, http.StatusText(status), status)
				return
			}

			log.Debug().Msg("signature verified")
			next.ServeHTTP(w, r)
		})
	}
}

// verifyMuxSignature checks the video provider's "Mux-Signature" header.
func (h *Handler) verifyMuxSignature(r *http.Request, body []byte) error {
	if h.app.MuxWebhookSecret == "" {
		return ErrSignatureNotConfigured
	}

	header := r.Header.Get(muxSignatureHeader)
	if header == "" {
		return fmt.Errorf("%w: %s", ErrMissingSignature, muxSignatureHeader)
	}

	return utils.VerifyMuxSignature(header, body, h.app.MuxWebhookSecret, h.now())
}

// verifyUserWebhookSignature checks the Svix headers of an identity provider
// delivery: secret format, multi-signature header and timestamp tolerance
// are handled by the svix webhook verifier.
func (h *Handler) verifyUserWebhookSignature(r *http.Request, body []byte) error {
	if h.app.UserWebhookSecret == "" {
		return ErrSignatureNotConfigured
	}

	if r.Header.Get(svixIDHeader) == "" || r.Header.Get(svixTimestampHeader) == "" || r.Header.Get(svixSignatureHeader) == "" {
		return fmt.Errorf("%w: svix headers", ErrMissingSignature)
	}

	wh, err := svix.NewWebhook(h.app.UserWebhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureNotConfigured, err)
	}
	if err = wh.Verify(body, r.Header); err != nil {
		return fmt.Errorf("%w: %w", utils.ErrInvalidSignature, err)
	}

	return nil
}

// verifyWorkflowSignature checks the Upstash-Signature JWT against the
// callback URL of the requested workflow kind, accepting the current or the
// next signing key. Without keys every delivery is rejected.
func (h *Handler) verifyWorkflowSignature(r *http.Request, body []byte) error {
	if !h.workflowCallbacksEnabled() {
		return fmt.Errorf("%w: workflow signing keys", ErrSignatureNotConfigured)
	}

	token := r.Header.Get(upstashSignatureHeader)
	if token == "" {
		return fmt.Errorf("%w: %s", ErrMissingSignature, upstashSignatureHeader)
	}

	url := adapter.WorkflowCallbackURL(h.publicURL, models.WorkflowKind(chi.URLParam(r, "kind")))
	return utils.VerifyUpstashSignature(token, body, url, h.app.QStashCurrentSigningKey, h.app.QStashNextSigningKey)
}

// workflowCallbacksEnabled reports whether orchestrator deliveries can be
// verified. The workflow route is only served when they can.
func (h *Handler) workflowCallbacksEnabled() bool {
	return h.app.QStashCurrentSigningKey != "" || h.app.QStashNextSigningKey != ""
}
