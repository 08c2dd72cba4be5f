package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. Every outbound provider
// client and the object downloader get their own instance.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.mux.com", 30*time.Second)
//	resp, err := client.R().Get("/video/v1/uploads")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. baseURL and timeout are
// applied when non-zero.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "go-tube")
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
