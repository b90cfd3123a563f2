// Package api provides the HTTP API for Sugbo Tours.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/sugbotours/sugbotours/internal/api/handler"
	"github.com/sugbotours/sugbotours/internal/api/middleware"
	"github.com/sugbotours/sugbotours/internal/auth"
	"github.com/sugbotours/sugbotours/internal/booking"
	"github.com/sugbotours/sugbotours/internal/itinerary"
	"github.com/sugbotours/sugbotours/internal/landmark"
	"github.com/sugbotours/sugbotours/internal/pricing"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version     string
	BuildTime   string
	Logger      zerolog.Logger
	ServiceName string
	Metrics     *middleware.Metrics

	AuthService     *auth.Service
	LandmarkService *landmark.Service
	SessionStore    *itinerary.Store
	Calculator      *pricing.Calculator
	BookingService  *booking.Service

	// DB is pinged by the readiness check; nil in in-memory mode.
	DB handler.Pinger
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "sugbotours-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.DB)
	landmarkHandler := handler.NewLandmarkHandler(cfg.LandmarkService)
	itineraryHandler := handler.NewItineraryHandler(cfg.SessionStore, cfg.LandmarkService, cfg.Calculator)
	pricingHandler := handler.NewPricingHandler(cfg.Calculator)
	bookingHandler := handler.NewBookingHandler(cfg.BookingService, cfg.SessionStore)

	// Create auth middleware
	authMiddleware := middleware.Auth(cfg.AuthService)

	// Rate limit middleware per endpoint category
	bookingRateLimit := middleware.RateLimitByUser(middleware.BookingRateLimit) // 10 req/min
	actionRateLimit := middleware.RateLimitByIP(middleware.ActionRateLimit)     // 60 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		// Landmark catalog (public) - standard rate limiting
		r.Route("/landmarks", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", landmarkHandler.ListLandmarks)
			r.Get("/{landmarkID}", landmarkHandler.GetLandmark)
		})

		// Itinerary wizard sessions (public) - action-tier rate limiting
		r.Route("/itinerary/sessions", func(r chi.Router) {
			r.Use(actionRateLimit)
			r.Post("/", itineraryHandler.CreateSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", itineraryHandler.GetSession)
				r.Delete("/", itineraryHandler.DeleteSession)
				r.Post("/actions", itineraryHandler.DispatchAction)
			})
		})

		// Price quotes (public) - standard rate limiting
		r.With(standardRateLimit).Post("/pricing/quote", pricingHandler.Quote)

		// Bookings (authenticated)
		r.Route("/bookings", func(r chi.Router) {
			r.Use(authMiddleware)
			r.With(bookingRateLimit).Post("/", bookingHandler.CreateBooking)
			r.With(middleware.RateLimitByUser(middleware.StandardRateLimit)).Get("/", bookingHandler.ListBookings)
			r.With(middleware.RateLimitByUser(middleware.StandardRateLimit)).Get("/{bookingID}", bookingHandler.GetBooking)
		})

		// Admin endpoints (authenticated) - landmark management
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(standardRateLimit)

			r.Route("/landmarks", func(r chi.Router) {
				r.Post("/", landmarkHandler.CreateLandmark)
				r.Patch("/{landmarkID}", landmarkHandler.UpdateLandmark)
				r.Delete("/{landmarkID}", landmarkHandler.DeleteLandmark)
			})
		})
	})

	return r
}
