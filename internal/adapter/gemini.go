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
)

type geminiClient struct {
	client *utils.HTTPClient
	apiKey string
	model  string
	logger *logger.Logger
}

// NewGeminiClient constructs the [TextGenerator] backed by the Gemini
// generateContent endpoint.
func NewGeminiClient(cfg config.Gemini, timeout time.Duration, logger *logger.Logger) TextGenerator {
	return &geminiClient{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), timeout),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: logger,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateText returns the first part of the first candidate.
func (g *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	var result geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", url.PathEscape(g.model)))
	if err != nil {
		log.Err(err).Str("func", "*geminiClient.GenerateText").Msg("generate request failed")
		return "", fmt.Errorf("%w: generate text: %w", ErrProviderRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*geminiClient.GenerateText").Int("status", resp.StatusCode()).Msg("generation rejected")
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyGeneration
	}
	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyGeneration
	}

	return text, nil
}
