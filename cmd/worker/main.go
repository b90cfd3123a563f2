// Package main provides the entrypoint for the booking notification worker.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/sugbotours/sugbotours/internal/api/middleware"
	"github.com/sugbotours/sugbotours/internal/notify"
	"github.com/sugbotours/sugbotours/internal/telemetry"
	"github.com/sugbotours/sugbotours/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "sugbotours-worker"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting booking notification worker")

	// Worker also exposes a health endpoint for Cloud Run.
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry
	telemetryCfg := telemetry.ConfigFromEnv(serviceName, Version)
	tp, err := telemetry.Init(ctx, telemetryCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	cfg := worker.ConfigFromEnv()

	// Initialize webhook deliverer (optional)
	var deliverer worker.Deliverer
	if cfg.WebhookURL != "" {
		deliveryMetrics, metricsErr := middleware.NewDeliveryMetrics()
		if metricsErr != nil {
			log.Fatal().Err(metricsErr).Msg("failed to initialize delivery metrics")
		}

		deliverer = notify.NewWebhookClient(notify.WebhookConfig{
			URL:     cfg.WebhookURL,
			Secret:  cfg.WebhookSecret,
			Metrics: deliveryMetrics,
			Logger:  log,
		})
		log.Info().Str("url", cfg.WebhookURL).Msg("webhook deliverer initialized")
	} else {
		log.Warn().Msg("WEBHOOK_URL not set - booking events will only be logged")
	}

	// Initialize Pub/Sub handler
	handler, err := worker.NewPubSubHandler(ctx, worker.PubSubConfig{
		ProjectID:        cfg.ProjectID,
		SubscriptionName: cfg.SubscriptionName,
		Deliverer:        deliverer,
		DeliveryTimeout:  cfg.DeliveryTimeout,
		Logger:           log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize pubsub handler")
	}
	defer func() {
		if closeErr := handler.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close pubsub handler")
		}
	}()

	// Health check server
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"OK","version":"%s"}`, Version)
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health check server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("health server error")
		}
	}()

	// Start consuming messages
	go func() {
		if err := handler.Start(ctx); err != nil && ctx.Err() == nil {
			log.Fatal().Err(err).Msg("pubsub handler error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
}
