package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
}

// getServerVersion answers in plain text unless the client asks for JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())
	log := logger.FromRequest(r)

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		if _, err := utils.WriteJSON(w, versionResponse{Version: version}, http.StatusOK); err != nil {
			log.Err(err).Str("func", "*Handler.getServerVersion").Msg("writing version failed")
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(version)); err != nil {
		log.Err(err).Str("func", "*Handler.getServerVersion").Msg("writing version failed")
	}
}
