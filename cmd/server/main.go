// AI Crop Yield Prediction - Crop Advisory and Analytics Backend
// Copyright 2026 Panav (PanavCodes)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN

// Server entry point. Wires configuration, logging, Mongo, the inference
// and advisory services, and the HTTP API under a suture supervision tree.
//
// Mongo being unreachable at startup does not abort: the server comes up
// degraded and the data endpoints return 503 until the next restart.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/analytics"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/api"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/auth"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/chatbot"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/config"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/database"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/inference"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/llm"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/logging"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/metrics"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/supervisor"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/supervisor/services"
	"github.com/PanavCodes/AI-CROP-YIELD-PREDICTION-MAIN/internal/weather"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	metrics.AppInfo.WithLabelValues(api.Version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting crop advisory server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Mongo. Connection failure degrades the data endpoints instead of
	// aborting startup.
	var store api.CropStore
	var uploader api.Uploader
	db, err := database.New(ctx, &cfg.Mongo)
	if err != nil {
		logging.Warn().Err(err).Msg("MongoDB unavailable, starting in degraded mode")
	} else {
		defer func() {
			if err := db.Close(context.Background()); err != nil {
				logging.Warn().Err(err).Msg("Failed to close MongoDB connection")
			}
		}()
		if err := db.EnsureIndexes(ctx); err != nil {
			logging.Warn().Err(err).Msg("Failed to ensure MongoDB indexes")
		}
		store = db
		uploader = analytics.NewService(db)
	}

	// Auth.
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		return err
	}
	authService := auth.NewService(jwtManager)

	// Inference. Never fails; missing artifacts select the rule-based path.
	predictor := inference.NewService(&cfg.ML)

	// Chatbot LLM. A missing or malformed key selects the template path.
	var completer chatbot.Completer
	if client, err := llm.NewClient(&cfg.Chat); err != nil {
		logging.Warn().Err(err).Msg("OpenRouter not configured, chatbot uses knowledge templates")
	} else {
		completer = client
	}
	advisor := chatbot.NewService(completer)

	weatherService := weather.NewService(&cfg.Weather)

	// HTTP layer.
	handler := api.NewHandler(cfg, store, authService, predictor, uploader, advisor, weatherService)
	router := api.NewRouter(handler, authService, api.NewChiMiddleware(&cfg.Security))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	// Supervision tree.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, supervisor.DefaultTreeConfig().ShutdownTimeout))

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("HTTP server listening")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Info().Msg("Server stopped")
	return nil
}
