// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file format.
// Durations are strings such as "30s".
type StructuredJSONConfig struct {
	App struct {
		Version                 string `json:"version"`
		JWKSURL                 string `json:"jwks_url"`
		TokenSignKey            string `json:"token_sign_key"`
		TokenIssuer             string `json:"token_issuer"`
		MuxWebhookSecret        string `json:"mux_webhook_secret"`
		UserWebhookSecret       string `json:"user_webhook_secret"`
		QStashCurrentSigningKey string `json:"qstash_current_signing_key"`
		QStashNextSigningKey    string `json:"qstash_next_signing_key"`
		MaxThumbnailSize        string `json:"max_thumbnail_size"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Objects struct {
			Bucket        string `json:"bucket"`
			Region        string `json:"region"`
			Endpoint      string `json:"endpoint"`
			PublicBaseURL string `json:"public_base_url"`
			UsePathStyle  bool   `json:"use_path_style"`
		} `json:"objects,omitempty"`

		Cache struct {
			Addr     string   `json:"addr"`
			Password string   `json:"password"`
			DB       int      `json:"db"`
			TTL      Duration `json:"ttl"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		PublicURL      string   `json:"public_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mux struct {
			BaseURL     string `json:"base_url"`
			TokenID     string `json:"token_id"`
			TokenSecret string `json:"token_secret"`
			StreamURL   string `json:"stream_url"`
			ImageURL    string `json:"image_url"`
			CORSOrigin  string `json:"cors_origin"`
		} `json:"mux,omitempty"`
		Gemini struct {
			BaseURL string `json:"base_url"`
			APIKey  string `json:"api_key"`
			Model   string `json:"model"`
		} `json:"gemini,omitempty"`
		Replicate struct {
			BaseURL      string   `json:"base_url"`
			APIToken     string   `json:"api_token"`
			PollInterval Duration `json:"poll_interval"`
		} `json:"replicate,omitempty"`
		QStash struct {
			BaseURL string `json:"base_url"`
			Token   string `json:"token"`
			Retries int    `json:"retries"`
		} `json:"qstash,omitempty"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Events struct {
		Brokers []string `json:"brokers"`
		Topic   string   `json:"topic"`
	} `json:"events,omitempty"`

	Workers struct {
		Concurrency int `json:"concurrency"`
		QueueSize   int `json:"queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:                 jsonCfg.App.Version,
			JWKSURL:                 jsonCfg.App.JWKSURL,
			TokenSignKey:            jsonCfg.App.TokenSignKey,
			TokenIssuer:             jsonCfg.App.TokenIssuer,
			MuxWebhookSecret:        jsonCfg.App.MuxWebhookSecret,
			UserWebhookSecret:       jsonCfg.App.UserWebhookSecret,
			QStashCurrentSigningKey: jsonCfg.App.QStashCurrentSigningKey,
			QStashNextSigningKey:    jsonCfg.App.QStashNextSigningKey,
			MaxThumbnailSize:        jsonCfg.App.MaxThumbnailSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Objects: Objects{
				Bucket:        jsonCfg.Storage.Objects.Bucket,
				Region:        jsonCfg.Storage.Objects.Region,
				Endpoint:      jsonCfg.Storage.Objects.Endpoint,
				PublicBaseURL: jsonCfg.Storage.Objects.PublicBaseURL,
				UsePathStyle:  jsonCfg.Storage.Objects.UsePathStyle,
			},
			Cache: Cache{
				Addr:     jsonCfg.Storage.Cache.Addr,
				Password: jsonCfg.Storage.Cache.Password,
				DB:       jsonCfg.Storage.Cache.DB,
				TTL:      time.Duration(jsonCfg.Storage.Cache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			PublicURL:      jsonCfg.Server.PublicURL,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Mux: Mux{
				BaseURL:     jsonCfg.Adapter.Mux.BaseURL,
				TokenID:     jsonCfg.Adapter.Mux.TokenID,
				TokenSecret: jsonCfg.Adapter.Mux.TokenSecret,
				StreamURL:   jsonCfg.Adapter.Mux.StreamURL,
				ImageURL:    jsonCfg.Adapter.Mux.ImageURL,
				CORSOrigin:  jsonCfg.Adapter.Mux.CORSOrigin,
			},
			Gemini: Gemini{
				BaseURL: jsonCfg.Adapter.Gemini.BaseURL,
				APIKey:  jsonCfg.Adapter.Gemini.APIKey,
				Model:   jsonCfg.Adapter.Gemini.Model,
			},
			Replicate: Replicate{
				BaseURL:      jsonCfg.Adapter.Replicate.BaseURL,
				APIToken:     jsonCfg.Adapter.Replicate.APIToken,
				PollInterval: time.Duration(jsonCfg.Adapter.Replicate.PollInterval),
			},
			QStash: QStash{
				BaseURL: jsonCfg.Adapter.QStash.BaseURL,
				Token:   jsonCfg.Adapter.QStash.Token,
				Retries: jsonCfg.Adapter.QStash.Retries,
			},
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Events: Events{
			Brokers: jsonCfg.Events.Brokers,
			Topic:   jsonCfg.Events.Topic,
		},
		Workers: Workers{
			Concurrency: jsonCfg.Workers.Concurrency,
			QueueSize:   jsonCfg.Workers.QueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
