package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/models"
)

// WorkflowPath is the route prefix the orchestrator calls back.
const WorkflowPath = "/api/videos/workflows/"

type qstashClient struct {
	client    *utils.HTTPClient
	publicURL string
	retries   int
	logger    *logger.Logger
}

// NewQStashClient constructs the [WorkflowTrigger] publishing to Upstash
// QStash. Deliveries go to publicURL + WorkflowPath + kind. A non-2xx
// answer makes QStash redeliver the whole request, so a failed run is
// retried from its first step.
func NewQStashClient(cfg config.QStash, publicURL string, timeout time.Duration, logger *logger.Logger) WorkflowTrigger {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), timeout)
	client.SetAuthToken(cfg.Token)

	return &qstashClient{
		client:    client,
		publicURL: strings.TrimRight(publicURL, "/"),
		retries:   cfg.Retries,
		logger:    logger,
	}
}

type qstashPublishResponse struct {
	MessageID string `json:"messageId"`
}

// CallbackURL returns the endpoint the orchestrator delivers kind to.
func (q *qstashClient) CallbackURL(kind models.WorkflowKind) string {
	return WorkflowCallbackURL(q.publicURL, kind)
}

// WorkflowCallbackURL joins the public base URL and the workflow route of
// kind. Upstash signs deliveries with this URL as subject.
func WorkflowCallbackURL(publicURL string, kind models.WorkflowKind) string {
	return strings.TrimRight(publicURL, "/") + WorkflowPath + string(kind)
}

func (q *qstashClient) Trigger(ctx context.Context, req models.WorkflowRequest) (models.WorkflowRun, error) {
	log := logger.FromContext(ctx)

	var result qstashPublishResponse
	resp, err := q.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Upstash-Retries", strconv.Itoa(q.retries)).
		SetBody(req).
		SetResult(&result).
		Post("/v2/publish/" + q.CallbackURL(req.Kind))
	if err != nil {
		log.Err(err).Str("func", "*qstashClient.Trigger").Msg("publish request failed")
		return models.WorkflowRun{}, fmt.Errorf("%w: trigger workflow: %w", ErrProviderRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*qstashClient.Trigger").Int("status", resp.StatusCode()).Msg("publish rejected")
		return models.WorkflowRun{}, err
	}

	log.Info().
		Str("func", "*qstashClient.Trigger").
		Str("kind", string(req.Kind)).
		Str("video_id", req.VideoID).
		Str("message_id", result.MessageID).
		Msg("workflow triggered")

	return models.WorkflowRun{WorkflowRunID: result.MessageID}, nil
}
