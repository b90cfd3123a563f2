// Package main provides the entrypoint for the Sugbo Tours API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/sugbotours/sugbotours/internal/api"
	"github.com/sugbotours/sugbotours/internal/api/middleware"
	"github.com/sugbotours/sugbotours/internal/auth"
	"github.com/sugbotours/sugbotours/internal/booking"
	"github.com/sugbotours/sugbotours/internal/database"
	"github.com/sugbotours/sugbotours/internal/itinerary"
	"github.com/sugbotours/sugbotours/internal/landmark"
	"github.com/sugbotours/sugbotours/internal/notify"
	"github.com/sugbotours/sugbotours/internal/pricing"
	"github.com/sugbotours/sugbotours/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "sugbotours-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting Sugbo Tours API")

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryCfg := telemetry.ConfigFromEnv(serviceName, Version)

	tp, err := telemetry.Init(ctx, telemetryCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryCfg.Enabled {
		log.Info().
			Str("otlp_endpoint", telemetryCfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Connect to database
	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to apply database schema")
	}
	log.Info().
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Msg("database connected")

	// Initialize auth service (tokens are issued by the identity service;
	// this instance only validates them)
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		jwtSigningKey = "local-dev-signing-key-change-in-production"
		log.Warn().Msg("using default JWT signing key - not secure for production")
	}

	authService := auth.NewService(auth.Config{
		SigningKey: jwtSigningKey,
	})
	log.Info().Msg("auth service initialized")

	// Initialize landmark catalog
	landmarkService := landmark.NewService(landmark.NewPostgresRepository(pool))
	log.Info().Msg("landmark service initialized")

	// Initialize itinerary session store
	sessionStore := itinerary.NewStore(itinerary.StoreConfig{
		Logger: log,
	})
	log.Info().Msg("itinerary session store initialized")

	// Initialize pricing calculator
	calculator := pricing.NewCalculator(pricing.DefaultConfig())

	// Initialize booking event publisher (optional)
	var publisher booking.EventPublisher
	if topic := os.Getenv("PUBSUB_TOPIC"); topic != "" {
		pub, pubErr := notify.NewPublisher(ctx, notify.PublisherConfig{
			ProjectID: os.Getenv("PUBSUB_PROJECT_ID"),
			TopicName: topic,
			Logger:    log,
		})
		if pubErr != nil {
			log.Fatal().Err(pubErr).Msg("failed to initialize event publisher")
		}
		defer func() {
			if closeErr := pub.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close event publisher")
			}
		}()
		publisher = pub
		log.Info().Str("topic", topic).Msg("booking event publisher initialized")
	} else {
		log.Warn().Msg("PUBSUB_TOPIC not set - booking events will not be published")
	}

	// Initialize booking service
	bookingService := booking.NewService(booking.ServiceConfig{
		Repository: booking.NewPostgresRepository(pool),
		Assembler:  booking.NewAssembler(calculator),
		Catalog:    landmarkService,
		Publisher:  publisher,
		Logger:     log,
	})
	log.Info().Msg("booking service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:         Version,
		BuildTime:       BuildTime,
		Logger:          log,
		ServiceName:     serviceName,
		Metrics:         metrics,
		AuthService:     authService,
		LandmarkService: landmarkService,
		SessionStore:    sessionStore,
		Calculator:      calculator,
		BookingService:  bookingService,
		DB:              pool,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
