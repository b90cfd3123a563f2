package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sugbotours/sugbotours/internal/api/middleware"
	"github.com/sugbotours/sugbotours/internal/api/models"
	"github.com/sugbotours/sugbotours/internal/api/response"
	"github.com/sugbotours/sugbotours/internal/booking"
	"github.com/sugbotours/sugbotours/internal/itinerary"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookings *booking.Service
	sessions *itinerary.Store
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings *booking.Service, sessions *itinerary.Store) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		sessions: sessions,
	}
}

// CreateBooking handles POST /v1/bookings - book the itinerary of a wizard
// session. The session is consumed atomically before the booking is
// created, so only one of two concurrent requests can book it; a failed
// booking restores the session.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	var input models.BookingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	if input.SessionID == "" {
		response.BadRequest(w, r, "validation failed", []models.FieldError{
			{Field: "sessionId", Message: "is required"},
		})
		return
	}

	sess, err := h.sessions.Consume(input.SessionID)
	if err != nil {
		if errors.Is(err, itinerary.ErrSessionNotFound) {
			response.NotFound(w, r, "itinerary session not found")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	b, err := h.bookings.Create(r.Context(), userID, sess.State, &input)
	if err != nil {
		h.sessions.Restore(sess)

		var validationErr *booking.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.BadRequest(w, r, "validation failed", validationErr.Errors)
		case errors.Is(err, booking.ErrNotBookable):
			response.Conflict(w, r, "itinerary is not bookable: every tour day needs at least one landmark")
		default:
			response.InternalError(w, r, "internal server error")
		}
		return
	}

	location := fmt.Sprintf("/v1/bookings/%s", b.ID)
	response.Created(w, r, location, b)
}

// GetBooking handles GET /v1/bookings/{bookingID}.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	bookingID := chi.URLParam(r, "bookingID")

	b, err := h.bookings.Get(r.Context(), userID, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			response.NotFound(w, r, "booking not found")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, b)
}

// ListBookings handles GET /v1/bookings - list the user's bookings.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			response.BadRequest(w, r, "validation failed", []models.FieldError{
				{Field: "limit", Message: "must be an integer between 1 and 100"},
			})
			return
		}
		limit = parsed
	}

	page, err := h.bookings.List(r.Context(), userID, limit)
	if err != nil {
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, page)
}
