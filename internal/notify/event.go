// Package notify publishes booking lifecycle events to Pub/Sub and
// delivers them to the operator's webhook endpoint.
package notify

import (
	"encoding/json"
	"time"

	"github.com/sugbotours/sugbotours/internal/booking"
)

// Event types carried in the "event" message attribute.
const (
	EventBookingCreated = "booking.created"
)

// BookingCreatedEvent is the wire format of a booking-created event. The
// itinerary payload is embedded verbatim so downstream consumers never
// re-derive pricing.
type BookingCreatedEvent struct {
	BookingID    string    `json:"bookingId"`
	UserID       string    `json:"userId"`
	TotalPrice   int       `json:"totalPrice"`
	GroupSize    int       `json:"groupSize"`
	StartDate    string    `json:"startDate"`
	ContactName  string    `json:"contactName"`
	ContactEmail string    `json:"contactEmail"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`

	// Itinerary holds the assembled payload as raw JSON.
	Itinerary json.RawMessage `json:"itinerary,omitempty"`
}

// NewBookingCreatedEvent builds the event for a persisted booking.
func NewBookingCreatedEvent(b *booking.Booking) BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID:    b.ID,
		UserID:       b.UserID,
		TotalPrice:   b.TotalPrice,
		GroupSize:    b.GroupSize,
		StartDate:    b.StartDate.Format(booking.StartDateLayout),
		ContactName:  b.ContactName,
		ContactEmail: b.ContactEmail,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		Itinerary:    json.RawMessage(b.ItineraryDetails),
	}
}
