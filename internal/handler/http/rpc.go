// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/service"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/internal/validators"
)

// maxRPCBodySize bounds mutation inputs.
const maxRPCBodySize = 1 << 20

type procedureType int

const (
	// queryProcedure is called with GET and reads its input from ?input=.
	queryProcedure procedureType = iota
	// mutationProcedure is called with POST and reads its input from the body.
	mutationProcedure
)

func (t procedureType) method() string {
	if t == mutationProcedure {
		return http.MethodPost
	}
	return http.MethodGet
}

type accessLevel int

const (
	// publicAccess procedures run for anyone; the caller is resolved when a
	// valid token is sent.
	publicAccess accessLevel = iota
	// protectedAccess procedures require an authenticated caller.
	protectedAccess
)

type procedure struct {
	typ    procedureType
	access accessLevel
	call   func(ctx context.Context, userID string, input []byte) (any, error)
}

// noInput is the input of procedures that take none.
type noInput struct{}

// newProcedure binds fn to a typed input: the raw input is decoded into In
// and validated before fn runs.
func newProcedure[In, Out any](
	typ procedureType,
	access accessLevel,
	validator validators.Validator,
	fn func(ctx context.Context, userID string, in In) (Out, error),
) procedure {
	return procedure{
		typ:    typ,
		access: access,
		call: func(ctx context.Context, userID string, input []byte) (any, error) {
			var in In
			if raw := bytes.TrimSpace(input); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
				if err := json.Unmarshal(raw, &in); err != nil {
					return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
				}
			}
			if err := validator.Validate(ctx, &in); err != nil {
				return nil, err
			}
			return fn(ctx, userID, in)
		},
	}
}

type rpcResponse struct {
	Result *rpcResult `json:"result,omitempty"`
	Error  *rpcError  `json:"error,omitempty"`
}

type rpcResult struct {
	Data any `json:"data"`
}

type rpcError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"httpStatus"`
}

// serveRPC dispatches GET|POST /rpc/{procedure}.
func (h *Handler) serveRPC(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "procedure")

	proc, ok := h.procedures[name]
	if !ok {
		h.writeRPCError(w, r, fmt.Errorf("%w: %q", ErrUnknownProcedure, name))
		return
	}
	if r.Method != proc.typ.method() {
		w.Header().Set("Allow", proc.typ.method())
		h.writeRPCError(w, r, fmt.Errorf("%w: %s %q", ErrMethodNotAllowed, r.Method, name))
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	if proc.access == protectedAccess && userID == "" {
		h.writeRPCError(w, r, service.ErrUnauthenticated)
		return
	}

	input, err := rpcInput(w, r, proc.typ)
	if err != nil {
		h.writeRPCError(w, r, err)
		return
	}

	data, err := proc.call(r.Context(), userID, input)
	if err != nil {
		h.writeRPCError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, rpcResponse{Result: &rpcResult{Data: data}}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("procedure", name).Msg("writing rpc response failed")
	}
}

func rpcInput(w http.ResponseWriter, r *http.Request, typ procedureType) ([]byte, error) {
	if typ == queryProcedure {
		return []byte(r.URL.Query().Get("input")), nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRPCBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return body, nil
}

// writeRPCError answers with the RPC error envelope. Internal failures are
// logged with their cause and reported without it.
func (h *Handler) writeRPCError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("procedure", chi.URLParam(r, "procedure")).Int("status", status).Msg("rpc call failed")
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Str("procedure", chi.URLParam(r, "procedure")).Int("status", status).Msg("rpc call rejected")
	}

	resp := rpcResponse{Error: &rpcError{
		Code:       rpcCodeFromStatus(status),
		Message:    message,
		HTTPStatus: status,
	}}
	if _, werr := utils.WriteJSON(w, resp, status); werr != nil {
		log.Err(errors.Join(err, werr)).Msg("writing rpc error failed")
	}
}
