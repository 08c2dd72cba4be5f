package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReplicateClient(serverURL string) ImageGenerator {
	return NewReplicateClient(config.Replicate{
		BaseURL:      serverURL,
		APIToken:     "r8_token",
		PollInterval: time.Millisecond,
	}, 0, logger.Nop())
}

func TestReplicateClient_GenerateImage_Immediate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, thumbnailModelPath, r.URL.Path)
		assert.Equal(t, "Bearer r8_token", r.Header.Get("Authorization"))
		assert.Equal(t, "wait", r.Header.Get("Prefer"))

		var req predictionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a cat on a skateboard"+thumbnailPromptSuffix, req.Input.Prompt)
		assert.Equal(t, thumbnailNegativePrompt, req.Input.NegativePrompt)
		assert.Equal(t, 1792, req.Input.Width)
		assert.Equal(t, 1024, req.Input.Height)
		assert.Equal(t, 1, req.Input.NumOutputs)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"p-1","status":"succeeded","output":["https://cdn.example.com/out.webp"]}`))
	}))
	defer srv.Close()

	url, err := newTestReplicateClient(srv.URL).GenerateImage(context.Background(), "a cat on a skateboard")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/out.webp", url)
}

func TestReplicateClient_GenerateImage_Polls(t *testing.T) {
	var polls atomic.Int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			_, _ = fmt.Fprintf(w, `{"id":"p-1","status":"starting","urls":{"get":"%s/v1/predictions/p-1"}}`, srv.URL)
			return
		}

		assert.Equal(t, "/v1/predictions/p-1", r.URL.Path)
		if polls.Add(1) < 2 {
			_, _ = fmt.Fprintf(w, `{"id":"p-1","status":"processing","urls":{"get":"%s/v1/predictions/p-1"}}`, srv.URL)
			return
		}
		_, _ = w.Write([]byte(`{"id":"p-1","status":"succeeded","output":["https://cdn.example.com/out.webp"]}`))
	}))
	defer srv.Close()

	url, err := newTestReplicateClient(srv.URL).GenerateImage(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/out.webp", url)
	assert.Equal(t, int32(2), polls.Load())
}

func TestReplicateClient_GenerateImage_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "failed prediction", status: http.StatusCreated, body: `{"id":"p-1","status":"failed","error":"nsfw"}`, wantErr: ErrPredictionFailed},
		{name: "canceled prediction", status: http.StatusCreated, body: `{"id":"p-1","status":"canceled"}`, wantErr: ErrPredictionFailed},
		{name: "no output", status: http.StatusCreated, body: `{"id":"p-1","status":"succeeded","output":[]}`, wantErr: ErrEmptyGeneration},
		{name: "pending without status url", status: http.StatusCreated, body: `{"id":"p-1","status":"starting"}`, wantErr: ErrProviderRequest},
		{name: "bad token", status: http.StatusUnauthorized, body: `{"detail":"unauthenticated"}`, wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestReplicateClient(srv.URL).GenerateImage(context.Background(), "prompt")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReplicateClient_GenerateImage_ContextCanceled(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"id":"p-1","status":"processing","urls":{"get":"%s/v1/predictions/p-1"}}`, srv.URL)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestReplicateClient(srv.URL).GenerateImage(ctx, "prompt")
	assert.Error(t, err)
}
