package main

import (
	"log"
	"net/http"
	"time"

	"libfront/internal/adapters/api"
	"libfront/internal/adapters/util"
	"libfront/internal/config"
	"libfront/internal/core/domain/ports"
	"libfront/internal/web"
)

func main() {
	cfg := config.GetConfig()

	httpClient := &http.Client{
		Transport: &util.LoggingTransport{LogLevel: cfg.LogLevel},
		Timeout:   time.Duration(cfg.HTTPTimeoutSec) * time.Second,
	}

	// Fail fast on a bad base URL instead of on the first request.
	if _, err := api.New(cfg.APIBaseURL); err != nil {
		log.Fatalf("invalid API base URL: %v", err)
	}

	factory := func(sessionToken string) ports.LibraryService {
		client, _ := api.New(cfg.APIBaseURL,
			api.WithHTTPClient(httpClient),
			api.WithTokenProvider(func() string {
				// A statically configured token beats the browser session.
				if cfg.APIToken != "" {
					return cfg.APIToken
				}
				return sessionToken
			}),
		)
		return client
	}

	e := web.NewServer(factory).Routes()

	log.Printf("libfront web listening on %s (backend %s)", cfg.ListenAddr, cfg.APIBaseURL)
	if err := e.Start(cfg.ListenAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
