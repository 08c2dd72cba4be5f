// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the HTTP transport of the server.
//
// Client calls go through a single RPC endpoint, /rpc/{procedure}: queries
// are sent with GET and a URL-encoded JSON ?input=, mutations with POST and a
// JSON body. Results are wrapped as {"result":{"data":...}} and failures as
// {"error":{"code","message","httpStatus"}}.
//
// Provider callbacks (video webhook, user webhook, workflow deliveries) are
// plain HTTP endpoints whose raw body is checked against the caller's
// signature before it is decoded.
package http
