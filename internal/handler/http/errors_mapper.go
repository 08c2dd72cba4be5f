// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tube/internal/adapter"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/service"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/internal/validators"
	"github.com/MKhiriev/go-tube/internal/workers"
)

// errorStatusMap is ordered: errors are often wrapped twice (an auth error
// wrapping a not-found, a workflow step wrapping a provider error) and the
// first match wins.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrMalformedSignature, http.StatusUnauthorized},
	{utils.ErrInvalidSignature, http.StatusUnauthorized},
	{utils.ErrSignatureExpired, http.StatusUnauthorized},

	{ErrUnknownProcedure, http.StatusNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrMissingSignature, http.StatusBadRequest},
	{ErrMissingFile, http.StatusBadRequest},
	{ErrSignatureNotConfigured, http.StatusInternalServerError},

	{validators.ErrInvalidInput, http.StatusBadRequest},
	{validators.ErrUnsupportedType, http.StatusBadRequest},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest},
	{validators.ErrInvalidWorkflowKind, http.StatusBadRequest},
	{validators.ErrEmptyThumbnailPrompt, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrSelfSubscription, http.StatusBadRequest},
	{service.ErrVideoNotReady, http.StatusBadRequest},
	{service.ErrMissingUploadID, http.StatusBadRequest},
	{service.ErrMissingPlaybackID, http.StatusBadRequest},
	{service.ErrMissingAssetID, http.StatusBadRequest},
	{service.ErrUnsupportedFileType, http.StatusUnsupportedMediaType},
	{service.ErrFileTooLarge, http.StatusRequestEntityTooLarge},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrVideoNotFound, http.StatusNotFound},
	{store.ErrCategoryNotFound, http.StatusNotFound},
	{store.ErrSubscriptionNotFound, http.StatusNotFound},
	{store.ErrSubscriptionExists, http.StatusConflict},
	{store.ErrObjectStorageDisabled, http.StatusServiceUnavailable},
	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable},

	{workers.ErrQueueFull, http.StatusServiceUnavailable},
	{workers.ErrDispatcherStopped, http.StatusServiceUnavailable},

	{adapter.ErrProviderRequest, http.StatusBadGateway},
	{adapter.ErrEmptyGeneration, http.StatusBadGateway},
	{adapter.ErrPredictionFailed, http.StatusBadGateway},
	{adapter.ErrBadRequest, http.StatusBadGateway},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrNotFound, http.StatusBadGateway},
	{adapter.ErrConflict, http.StatusBadGateway},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusBadGateway},
	{adapter.ErrTooManyRequests, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers a non-RPC request with a plain text error. Messages of
// server-side failures are not sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}

// rpcCodeFromStatus returns the RPC error code clients switch on.
func rpcCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_SUPPORTED"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE"
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case http.StatusBadGateway:
		return "BAD_GATEWAY"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	case http.StatusGatewayTimeout:
		return "TIMEOUT"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
