package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/models"
)

type muxClient struct {
	api    *utils.HTTPClient
	stream *utils.HTTPClient

	imageURL   string
	corsOrigin string

	logger *logger.Logger
}

// NewMuxClient constructs the [VideoProvider] for Mux. API calls use basic
// auth with the access token id and secret.
func NewMuxClient(cfg config.Mux, timeout time.Duration, logger *logger.Logger) VideoProvider {
	api := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), timeout)
	api.SetBasicAuth(cfg.TokenID, cfg.TokenSecret)

	return &muxClient{
		api:        api,
		stream:     utils.NewHTTPClient(strings.TrimRight(cfg.StreamURL, "/"), timeout),
		imageURL:   strings.TrimRight(cfg.ImageURL, "/"),
		corsOrigin: cfg.CORSOrigin,
		logger:     logger,
	}
}

type muxUploadRequest struct {
	NewAssetSettings muxAssetSettings `json:"new_asset_settings"`
	CORSOrigin       string           `json:"cors_origin"`
}

type muxAssetSettings struct {
	Passthrough    string          `json:"passthrough"`
	PlaybackPolicy []string        `json:"playback_policy"`
	Input          []muxAssetInput `json:"input"`
}

type muxAssetInput struct {
	GeneratedSubtitles []muxSubtitles `json:"generated_subtitles"`
}

type muxSubtitles struct {
	LanguageCode string `json:"language_code"`
	Name         string `json:"name"`
}

type muxUploadResponse struct {
	Data models.MuxUpload `json:"data"`
}

// CreateUpload opens a public-playback direct upload with English
// subtitles generated for the resulting asset.
func (m *muxClient) CreateUpload(ctx context.Context, passthrough string) (models.MuxUpload, error) {
	log := logger.FromContext(ctx)

	body := muxUploadRequest{
		NewAssetSettings: muxAssetSettings{
			Passthrough:    passthrough,
			PlaybackPolicy: []string{"public"},
			Input: []muxAssetInput{{
				GeneratedSubtitles: []muxSubtitles{{LanguageCode: "en", Name: "English"}},
			}},
		},
		CORSOrigin: m.corsOrigin,
	}

	var result muxUploadResponse
	resp, err := m.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post("/video/v1/uploads")
	if err != nil {
		log.Err(err).Str("func", "*muxClient.CreateUpload").Msg("upload request failed")
		return models.MuxUpload{}, fmt.Errorf("%w: create upload: %w", ErrProviderRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*muxClient.CreateUpload").Int("status", resp.StatusCode()).Msg("upload rejected")
		return models.MuxUpload{}, err
	}
	if result.Data.ID == "" || result.Data.URL == "" {
		return models.MuxUpload{}, fmt.Errorf("%w: create upload: empty upload in response", ErrProviderRequest)
	}

	return result.Data, nil
}

// FetchTranscript returns the text track as plain text.
func (m *muxClient) FetchTranscript(ctx context.Context, playbackID, trackID string) (string, error) {
	resp, err := m.stream.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(fmt.Sprintf("/%s/text/%s.txt", url.PathEscape(playbackID), url.PathEscape(trackID)))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*muxClient.FetchTranscript").Msg("transcript request failed")
		return "", fmt.Errorf("%w: fetch transcript: %w", ErrProviderRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (m *muxClient) ThumbnailURL(playbackID string) string {
	return fmt.Sprintf("%s/%s/thumbnail.jpg", m.imageURL, playbackID)
}

func (m *muxClient) PreviewURL(playbackID string) string {
	return fmt.Sprintf("%s/%s/animated.gif", m.imageURL, playbackID)
}
