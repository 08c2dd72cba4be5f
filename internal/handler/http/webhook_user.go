package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/models"
)

// userWebhook mirrors an identity provider user event into the users table.
func (h *Handler) userWebhook(w http.ResponseWriter, r *http.Request) {
	var event models.UserWebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "failed to decode user webhook")
		return
	}

	if err := h.services.UserService.SyncFromWebhook(r.Context(), event); err != nil {
		writeError(w, r, err, "user webhook failed")
		return
	}

	logger.FromRequest(r).Info().Str("type", event.Type).Str("clerk_id", event.Data.ID).Msg("user webhook applied")
	acknowledge(w, r)
}
