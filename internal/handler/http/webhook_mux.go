// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/models"
)

const webhookReceived = "Webhook received"

// muxWebhook applies a video provider callback. The signature has already
// been checked by withSignature.
//
// Callbacks for uploads this server does not know are acknowledged: the
// provider retries any non-2xx answer and the row will never appear.
func (h *Handler) muxWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var event models.MuxWebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "failed to decode video webhook")
		return
	}

	err := h.services.MuxWebhookService.Handle(r.Context(), event)
	if err != nil && !errors.Is(err, store.ErrVideoNotFound) {
		writeError(w, r, err, "video webhook failed")
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("type", event.Type).Str("upload_id", event.Data.UploadID).
			Msg("video webhook for unknown upload acknowledged")
	}

	acknowledge(w, r)
}

func acknowledge(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(webhookReceived)); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing webhook acknowledgement failed")
	}
}
