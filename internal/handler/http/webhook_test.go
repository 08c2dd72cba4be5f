package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-tube/internal/service"
	"github.com/MKhiriev/go-tube/internal/store"
	"github.com/MKhiriev/go-tube/models"
)

func postMuxWebhook(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/videos/webhook", strings.NewReader(body))
	req.Header.Set(muxSignatureHeader, muxSignature(body, "mux-secret", testNow))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func TestMuxWebhook(t *testing.T) {
	const readyEvent = `{"type":"video.asset.ready","data":{"id":"asset-1","upload_id":"upload-1","status":"ready","playback_ids":[{"id":"pb-1","policy":"public"}]}}`

	tests := []struct {
		name       string
		body       string
		setup      func(m serviceMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name: "applied",
			body: readyEvent,
			setup: func(m serviceMocks) {
				m.muxWebhook.EXPECT().Handle(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e models.MuxWebhookEvent) error {
						if e.Type != models.MuxAssetReady || e.Data.FirstPlaybackID() != "pb-1" {
							return errors.New("unexpected event")
						}
						return nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   webhookReceived,
		},
		{
			name: "unknown upload is acknowledged",
			body: readyEvent,
			setup: func(m serviceMocks) {
				m.muxWebhook.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(store.ErrVideoNotFound)
			},
			wantStatus: http.StatusOK,
			wantBody:   webhookReceived,
		},
		{
			name: "missing upload id",
			body: `{"type":"video.asset.created","data":{"id":"asset-1"}}`,
			setup: func(m serviceMocks) {
				m.muxWebhook.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(service.ErrMissingUploadID)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: readyEvent,
			setup: func(m serviceMocks) {
				m.muxWebhook.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(store.ErrUploadingObject)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "not JSON",
			body:       `video ready`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, testConfig())
			if tt.setup != nil {
				tt.setup(m)
			}

			rr := postMuxWebhook(h, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestMuxWebhook_UnsignedRejected(t *testing.T) {
	h, _ := newTestHandler(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/videos/webhook", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUserWebhook(t *testing.T) {
	const body = `{"type":"user.created","data":{"id":"user_2x","first_name":"Ada","last_name":"Lovelace","image_url":"https://img/ada.png"}}`

	sign := func(req *http.Request) {
		signSvix(t, req, testConfig().App.UserWebhookSecret, "msg_1", body, time.Now())
	}

	t.Run("synced", func(t *testing.T) {
		h, m := newTestHandler(t, testConfig())
		m.user.EXPECT().SyncFromWebhook(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e models.UserWebhookEvent) error {
				assert.Equal(t, models.UserCreated, e.Type)
				assert.Equal(t, "Ada Lovelace", e.Data.FullName())
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/users/webhook", strings.NewReader(body))
		sign(req)
		rr := httptest.NewRecorder()
		h.Init().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, webhookReceived, rr.Body.String())
	})

	t.Run("invalid event", func(t *testing.T) {
		h, m := newTestHandler(t, testConfig())
		m.user.EXPECT().SyncFromWebhook(gomock.Any(), gomock.Any()).Return(service.ErrInvalidDataProvided)

		req := httptest.NewRequest(http.MethodPost, "/api/users/webhook", strings.NewReader(body))
		sign(req)
		rr := httptest.NewRecorder()
		h.Init().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
