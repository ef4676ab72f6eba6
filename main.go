package main

import (
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-bff/internal/api"
	"github.com/campusconnect/portal-bff/internal/api/handlers"
	"github.com/campusconnect/portal-bff/internal/cache"
	"github.com/campusconnect/portal-bff/internal/config"
	"github.com/campusconnect/portal-bff/internal/logger"
	"github.com/campusconnect/portal-bff/internal/upstream"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 1.5 Init Logger
	logger.Init()
	zlog.Info().Msg("logger initialized")

	// 2. Optional Redis cache. Missing Redis degrades caching and the
	// distributed rate limiter, never startup.
	var cch *cache.Client
	if cfg.RedisURL != "" {
		c, err := cache.New(cfg.RedisURL)
		if err != nil {
			zlog.Warn().Err(err).Msg("redis unavailable, running without cache")
		} else {
			cch = c
			defer cch.Close()
		}
	}

	// 3. Backend client and resource pages
	client := upstream.NewClient(upstream.ClientConfig{
		ReadTimeout:     cfg.BackendReadTimeout,
		WriteTimeout:    cfg.BackendWriteTimeout,
		DownloadTimeout: cfg.BackendDownloadTimeout,
	})
	portal := handlers.NewPortal(client, cfg.BackendURL, cch, cfg.CacheTTLList)

	// 4. Setup Router
	r := api.NewRouter(cfg, portal, cch)

	// 5. Start Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	zlog.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.BackendURL).Msg("portal BFF starting")
	if err := srv.ListenAndServe(); err != nil {
		zlog.Fatal().Err(err).Msg("Server failed")
	}
}
