package http

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/mock"
	"github.com/MKhiriev/go-tube/internal/service"
)

const (
	testUserID  = "7f1e3c7a-3b1f-4c55-9b0e-0d3a2f6f1a10"
	testVideoID = "0b6c9a4e-2f59-4d8e-8a55-5d1f6b0f2c11"

	testSigningKey = "current-key"
)

var testNow = time.Unix(1_700_000_000, 0)

type serviceMocks struct {
	auth         *mock.MockAuthService
	user         *mock.MockUserService
	video        *mock.MockVideoService
	studio       *mock.MockStudioService
	category     *mock.MockCategoryService
	subscription *mock.MockSubscriptionService
	muxWebhook   *mock.MockMuxWebhookService
	workflow     *mock.MockWorkflowService
	upload       *mock.MockThumbnailUploadService
	appInfo      *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			MuxWebhookSecret:  "mux-secret",
			UserWebhookSecret: "whsec_dXNlci13ZWJob29rLWtleQ==",

			QStashCurrentSigningKey: testSigningKey,
		},
		Server: config.Server{PublicURL: "https://tube.example.com"},
	}
}

func newTestHandler(t *testing.T, cfg config.StructuredConfig) (*Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:         mock.NewMockAuthService(ctrl),
		user:         mock.NewMockUserService(ctrl),
		video:        mock.NewMockVideoService(ctrl),
		studio:       mock.NewMockStudioService(ctrl),
		category:     mock.NewMockCategoryService(ctrl),
		subscription: mock.NewMockSubscriptionService(ctrl),
		muxWebhook:   mock.NewMockMuxWebhookService(ctrl),
		workflow:     mock.NewMockWorkflowService(ctrl),
		upload:       mock.NewMockThumbnailUploadService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:            m.auth,
		UserService:            m.user,
		VideoService:           m.video,
		StudioService:          m.studio,
		CategoryService:        m.category,
		SubscriptionService:    m.subscription,
		MuxWebhookService:      m.muxWebhook,
		WorkflowService:        m.workflow,
		ThumbnailUploadService: m.upload,
		AppInfoService:         m.appInfo,
	}, cfg, logger.Nop())
	h.now = func() time.Time { return testNow }

	return h, m
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
