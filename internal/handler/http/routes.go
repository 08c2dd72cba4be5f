package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// workflowTimeout bounds a single workflow delivery. Generation steps wait on
// slow external models, so it is not tied to the request timeout.
const workflowTimeout = 5 * time.Minute

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version/", h.getServerVersion)

	// provider callbacks, authenticated by signature
	router.Group(func(r chi.Router) {
		r.Use(h.withTimeout(h.requestTimeout))
		r.With(h.withSignature("mux", h.verifyMuxSignature)).Post("/api/videos/webhook", h.muxWebhook)
		r.With(h.withSignature("svix", h.verifyUserWebhookSignature)).Post("/api/users/webhook", h.userWebhook)
	})
	// in-process runs never come back over HTTP, so the callback route only
	// exists when orchestrator deliveries can be verified
	if h.workflowCallbacksEnabled() {
		router.Group(func(r chi.Router) {
			r.Use(h.withTimeout(workflowTimeout))
			r.With(h.withSignature("upstash", h.verifyWorkflowSignature)).Post("/api/videos/workflows/{kind}", h.runWorkflow)
		})
	}

	// procedures resolve the caller themselves; access is checked per procedure
	router.Group(func(r chi.Router) {
		r.Use(h.withTimeout(h.requestTimeout), h.optionalAuth)
		r.Get("/rpc/{procedure}", h.serveRPC)
		r.Post("/rpc/{procedure}", h.serveRPC)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withTimeout(h.requestTimeout), h.auth)
		r.Post("/api/videos/{videoId}/thumbnail", h.uploadThumbnail)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
