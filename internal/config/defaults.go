package config

import "time"

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MaxThumbnailSize: "4MB",
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			Cache: Cache{
				TTL: 10 * time.Minute,
			},
		},
		Adapter: Adapter{
			Mux: Mux{
				BaseURL:    "https://api.mux.com",
				StreamURL:  "https://stream.mux.com",
				ImageURL:   "https://image.mux.com",
				CORSOrigin: "*",
			},
			Gemini: Gemini{
				BaseURL: "https://generativelanguage.googleapis.com",
				Model:   "gemini-pro",
			},
			Replicate: Replicate{
				BaseURL:      "https://api.replicate.com",
				PollInterval: time.Second,
			},
			QStash: QStash{
				BaseURL: "https://qstash.upstash.io",
				Retries: 3,
			},
			RequestTimeout: 60 * time.Second,
		},
		Events: Events{
			Topic: "video-status",
		},
		Workers: Workers{
			Concurrency: 2,
			QueueSize:   64,
		},
	}
}
