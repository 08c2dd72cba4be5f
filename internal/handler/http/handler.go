package http

import (
	"time"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/service"
	"github.com/MKhiriev/go-tube/internal/validators"
)

// Handler serves the RPC procedures, the provider callbacks and the upload
// endpoints.
type Handler struct {
	services  *service.Services
	validator validators.Validator

	// app holds the webhook and workflow signing secrets.
	app            config.App
	publicURL      string
	requestTimeout time.Duration

	procedures map[string]procedure

	now    func() time.Time
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services:  services,
		validator: validators.NewInputValidator(),
		app:       cfg.App,
		publicURL: cfg.Server.PublicURL,
		now:       time.Now,
		logger:    logger,

		requestTimeout: cfg.Server.RequestTimeout,
	}
	h.procedures = h.registerProcedures()
	return h
}
