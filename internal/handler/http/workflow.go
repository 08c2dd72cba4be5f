// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/models"
)

// runWorkflow executes one workflow delivery. Any failure answers 500 so the
// queue delivers the run again.
func (h *Handler) runWorkflow(w http.ResponseWriter, r *http.Request) {
	kind := models.WorkflowKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		http.NotFound(w, r)
		return
	}

	log := logger.FromRequest(r).With().Str("func", "*Handler.runWorkflow").Str("kind", string(kind)).Logger()

	var req models.WorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "failed to decode workflow request")
		return
	}
	req.Kind = kind

	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, err, "invalid workflow request")
		return
	}

	if err := h.services.WorkflowService.Run(r.Context(), req); err != nil {
		log.Err(err).Str("video_id", req.VideoID).Msg("workflow run failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("video_id", req.VideoID).Msg("workflow run completed")
	w.WriteHeader(http.StatusOK)
}
