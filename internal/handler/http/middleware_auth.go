package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/service"
	"github.com/MKhiriev/go-tube/internal/utils"
)

// auth is an HTTP middleware that requires an authenticated caller.
//
// The bearer token of the "Authorization" header is verified and resolved
// to a local user through [service.AuthService.Authenticate]; the user's ID
// is stored in the request context under [utils.UserIDCtxKey].
//
// Requests without a usable token are rejected with 401 Unauthorized. When
// the user lookup itself fails the status follows [statusFromError].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ctx, err := h.authenticate(r)
		if err != nil {
			status := statusFromError(err)
			log.Err(err).Int("status", status).Msg("authentication failed")
			http.Error(w, http.StatusText(status), status)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth resolves the caller when a token is sent and lets anonymous
// requests through. A token that cannot be verified is treated as absent;
// procedures that need a caller reject the request later.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, err := h.authenticate(r)
		if err != nil {
			log := logger.FromRequest(r)
			if errors.Is(err, service.ErrUnauthenticated) || errors.Is(err, ErrInvalidAuthorizationHeader) {
				log.Warn().Err(err).Msg("ignoring unverifiable token")
			} else {
				log.Err(err).Msg("resolving caller failed, continuing anonymously")
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate returns the request context carrying the caller's user ID.
func (h *Handler) authenticate(r *http.Request) (context.Context, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrEmptyAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	ctx := r.Context()
	user, err := h.services.AuthService.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug().Str("user_id", user.ID).Msg("caller authenticated")
	return utils.WithUserID(ctx, user.ID), nil
}
