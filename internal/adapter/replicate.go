// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/utils"
)

const (
	thumbnailModelPath      = "/v1/models/black-forest-labs/flux-schnell/predictions"
	thumbnailPromptSuffix   = ", professional youtube thumbnail, trending on artstation"
	thumbnailNegativePrompt = "text, watermark, low quality"
	thumbnailWidth          = 1792
	thumbnailHeight         = 1024
)

// Prediction states reported by Replicate.
const (
	predictionSucceeded = "succeeded"
	predictionFailed    = "failed"
	predictionCanceled  = "canceled"
)

type replicateClient struct {
	client       *utils.HTTPClient
	pollInterval time.Duration
	logger       *logger.Logger
}

// NewReplicateClient constructs the [ImageGenerator] running flux-schnell
// on Replicate.
func NewReplicateClient(cfg config.Replicate, timeout time.Duration, logger *logger.Logger) ImageGenerator {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), timeout)
	client.SetAuthToken(cfg.APIToken)

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = time.Second
	}

	return &replicateClient{
		client:       client,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

type predictionInput struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	NumOutputs     int    `json:"num_outputs"`
}

type predictionRequest struct {
	Input predictionInput `json:"input"`
}

type prediction struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Output []string `json:"output"`
	Error  any      `json:"error"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
}

// GenerateImage creates a prediction, waiting synchronously where the
// provider allows it, then polls until it settles.
func (r *replicateClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	var p prediction
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "wait").
		SetBody(predictionRequest{Input: predictionInput{
			Prompt:         prompt + thumbnailPromptSuffix,
			NegativePrompt: thumbnailNegativePrompt,
			Width:          thumbnailWidth,
			Height:         thumbnailHeight,
			NumOutputs:     1,
		}}).
		SetResult(&p).
		Post(thumbnailModelPath)
	if err != nil {
		log.Err(err).Str("func", "*replicateClient.GenerateImage").Msg("prediction request failed")
		return "", fmt.Errorf("%w: create prediction: %w", ErrProviderRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*replicateClient.GenerateImage").Int("status", resp.StatusCode()).Msg("prediction rejected")
		return "", err
	}

	for !settled(p.Status) {
		if p.URLs.Get == "" {
			return "", fmt.Errorf("%w: prediction %s has no status url", ErrProviderRequest, p.ID)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.pollInterval):
		}

		if p, err = r.poll(ctx, p.URLs.Get); err != nil {
			return "", err
		}
		log.Debug().Str("func", "*replicateClient.GenerateImage").Str("prediction", p.ID).Str("status", p.Status).Msg("prediction polled")
	}

	if p.Status != predictionSucceeded {
		return "", fmt.Errorf("%w: %s: %v", ErrPredictionFailed, p.Status, p.Error)
	}
	if len(p.Output) == 0 || p.Output[0] == "" {
		return "", ErrEmptyGeneration
	}

	return p.Output[0], nil
}

func (r *replicateClient) poll(ctx context.Context, url string) (prediction, error) {
	var p prediction
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&p).
		Get(url)
	if err != nil {
		return prediction{}, fmt.Errorf("%w: poll prediction: %w", ErrProviderRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return prediction{}, err
	}

	return p, nil
}

func settled(status string) bool {
	switch status {
	case predictionSucceeded, predictionFailed, predictionCanceled:
		return true
	}
	return false
}
