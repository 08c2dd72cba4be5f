package service

import (
	"fmt"

	"github.com/MKhiriev/go-tube/internal/adapter"
	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/internal/workers"
)

type Services struct {
	AuthService            AuthService
	UserService            UserService
	VideoService           VideoService
	StudioService          StudioService
	CategoryService        CategoryService
	SubscriptionService    SubscriptionService
	MuxWebhookService      MuxWebhookService
	WorkflowService        WorkflowService
	ThumbnailUploadService ThumbnailUploadService
	AppInfoService         AppInfoService

	// Dispatcher runs workflows in-process when no orchestrator is
	// configured; nil otherwise.
	Dispatcher *workers.Dispatcher
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	workflowService := NewWorkflowService(
		storages.VideoRepository,
		storages.ObjectStorage,
		adapters.VideoProvider,
		adapters.TextGenerator,
		adapters.ImageGenerator,
		logger,
	)

	var dispatcher *workers.Dispatcher
	trigger := adapters.WorkflowTrigger
	if trigger == nil {
		logger.Info().Msg("no workflow orchestrator configured, running workflows in-process")
		dispatcher = workers.NewDispatcher(workflowService, cfg.Workers, logger)
		trigger = dispatcher
	}

	return &Services{
		AuthService:         authService,
		UserService:         NewUserService(storages.UserRepository, logger),
		VideoService:        NewVideoService(storages.VideoRepository, storages.ObjectStorage, adapters.VideoProvider, trigger, logger),
		StudioService:       NewStudioService(storages.VideoRepository, logger),
		CategoryService:     NewCategoryService(storages.CategoryRepository, logger),
		SubscriptionService: NewSubscriptionService(storages.SubscriptionRepository, logger),
		MuxWebhookService: NewMuxWebhookService(
			storages.VideoRepository,
			storages.ObjectStorage,
			adapters.VideoProvider,
			adapters.EventPublisher,
			logger,
		),
		WorkflowService:        workflowService,
		ThumbnailUploadService: NewThumbnailUploadService(storages.VideoRepository, storages.ObjectStorage, cfg.App, logger),
		AppInfoService:         appInfoService,
		Dispatcher:             dispatcher,
	}, nil
}
